package category

// Definition is one entry of the closed category taxonomy. The table is
// immutable configuration: names, icons, colors and the matching data the
// classifier scores against.
type Definition struct {
	Name     string   `json:"name"`
	Icon     string   `json:"icon"`
	Color    string   `json:"color"`
	Keywords []string `json:"-"`
	Patterns []string `json:"-"`
}

// Other is the fallback category for unclassifiable names.
const Other = "Other"

// Definitions lists all categories in scoring order. The order is part of
// the contract: on tied scores the earlier category wins.
var Definitions = []Definition{
	{
		Name: "Health & Fitness", Icon: "🏃", Color: "#10B981",
		Keywords: []string{
			"exercise", "workout", "gym", "run", "running", "jog", "jogging",
			"walk", "walking", "swim", "swimming", "yoga", "stretch", "stretching",
			"push-up", "pushup", "sit-up", "situp", "plank", "squat", "lift",
			"weights", "cardio", "fitness", "sport", "sports", "basketball",
			"football", "soccer", "tennis", "cycling", "bike", "hiking",
			"steps", "10000 steps", "active", "movement", "physical",
		},
		Patterns: []string{
			`\d+\s*(min|minute|minutes)\s*(\w+\s+)*(workout|exercise|run|walk|jog)`,
			`(go|hit)\s*(the)?\s*gym`,
			`\d+\s*(push-?ups?|sit-?ups?|squats?|planks?)`,
		},
	},
	{
		Name: "Nutrition", Icon: "🥗", Color: "#22C55E",
		Keywords: []string{
			"water", "drink", "hydrate", "hydration", "eat", "eating",
			"vegetable", "vegetables", "fruit", "fruits", "healthy", "diet",
			"meal", "breakfast", "lunch", "dinner", "snack", "protein",
			"vitamin", "vitamins", "supplement", "supplements", "nutrition",
			"calorie", "calories", "food", "cook", "cooking", "no sugar",
			"no junk", "fasting", "intermittent",
		},
		Patterns: []string{
			`drink\s*\d+\s*(glass|glasses|liter|liters|oz|ml|cup|cups)`,
			`eat\s*\d+\s*(serving|servings|portion|portions)`,
			`no\s*(soda|junk|fast\s*food|sugar|sweets)`,
		},
	},
	{
		Name: "Sleep & Rest", Icon: "😴", Color: "#8B5CF6",
		Keywords: []string{
			"sleep", "sleeping", "bed", "bedtime", "wake", "waking",
			"rest", "resting", "nap", "napping", "early", "8 hours",
			"alarm", "morning", "night", "routine",
		},
		Patterns: []string{
			`sleep\s*(by|before|at)?\s*\d+`,
			`wake\s*(up)?\s*(at|by|before)?\s*\d+`,
			`\d+\s*(hour|hours|hr|hrs)\s*(of)?\s*sleep`,
			`(go\s*to\s*)?bed\s*(by|before|at)?\s*\d+`,
		},
	},
	{
		Name: "Learning & Education", Icon: "📚", Color: "#3B82F6",
		Keywords: []string{
			"read", "reading", "book", "books", "study", "studying",
			"learn", "learning", "course", "courses", "lesson", "lessons",
			"practice", "practicing", "language", "skill", "skills",
			"tutorial", "tutorials", "podcast", "podcasts", "article",
			"articles", "research", "knowledge", "education", "school",
			"class", "homework", "assignment", "exam", "test",
		},
		Patterns: []string{
			`read\s*\d+\s*(page|pages|chapter|chapters|min|minute|minutes)`,
			`study\s*\d+\s*(min|minute|minutes|hour|hours)`,
			`learn\s*(a\s*)?(new\s*)?\w+`,
			`\d+\s*(min|minute|minutes)\s*(of)?\s*(reading|studying|learning)`,
		},
	},
	{
		Name: "Productivity", Icon: "💼", Color: "#F59E0B",
		Keywords: []string{
			"work", "working", "task", "tasks", "project", "projects",
			"goal", "goals", "plan", "planning", "organize", "organizing",
			"clean", "cleaning", "tidy", "declutter", "inbox", "email",
			"emails", "meeting", "meetings", "deadline", "focus", "pomodoro",
			"productive", "productivity", "schedule", "calendar", "review",
			"daily", "weekly", "monthly", "journal", "journaling",
		},
		Patterns: []string{
			`complete\s*\d+\s*(task|tasks)`,
			`(clear|check|empty)\s*(my\s*)?(inbox|email)`,
			`\d+\s*(min|minute|minutes|hour|hours)\s*(of)?\s*(deep\s*)?work`,
			`(morning|evening|daily|weekly)\s*(review|planning|routine)`,
		},
	},
	{
		Name: "Mindfulness", Icon: "🧘", Color: "#EC4899",
		Keywords: []string{
			"meditate", "meditation", "meditating", "mindful", "mindfulness",
			"breathe", "breathing", "breath", "gratitude", "grateful",
			"thankful", "journal", "journaling", "reflect", "reflection",
			"pray", "prayer", "praying", "spiritual", "zen", "calm",
			"relax", "relaxing", "relaxation", "peace", "peaceful",
			"affirmation", "affirmations", "positive", "visualization",
		},
		Patterns: []string{
			`meditate\s*\d+\s*(min|minute|minutes)`,
			`\d+\s*(min|minute|minutes)\s*(of)?\s*meditation`,
			`(write|list)\s*\d+\s*(thing|things)\s*(i.m|im|i\s*am)?\s*(grateful|thankful)`,
			`(morning|evening)\s*(meditation|prayer|gratitude)`,
		},
	},
	{
		Name: "Social", Icon: "👥", Color: "#06B6D4",
		Keywords: []string{
			"call", "calling", "friend", "friends", "family", "parent",
			"parents", "mom", "dad", "brother", "sister", "talk", "talking",
			"chat", "chatting", "message", "text", "texting", "connect",
			"connection", "social", "relationship", "relationships",
			"visit", "visiting", "hangout", "meet", "meeting",
		},
		Patterns: []string{
			`call\s*(my\s*)?(mom|dad|parent|parents|friend|family)`,
			`(text|message|chat\s*with)\s*(my\s*)?\w+`,
			`(spend|quality)\s*time\s*with`,
		},
	},
	{
		Name: "Finance", Icon: "💰", Color: "#84CC16",
		Keywords: []string{
			"save", "saving", "savings", "money", "budget", "budgeting",
			"invest", "investing", "investment", "expense", "expenses",
			"track", "tracking", "spend", "spending", "financial",
			"finance", "finances", "income", "debt", "bill", "bills",
			"bank", "account", "retirement", "stock", "stocks",
		},
		Patterns: []string{
			`save\s*\$?\d+`,
			`(track|log|record)\s*(my\s*)?(expense|expenses|spending)`,
			`(no|avoid)\s*(unnecessary|impulse)\s*(purchase|purchases|spending|buy)`,
			`(check|review)\s*(my\s*)?(budget|finances|accounts?)`,
		},
	},
	{
		Name: "Creative", Icon: "🎨", Color: "#F472B6",
		Keywords: []string{
			"write", "writing", "draw", "drawing", "paint", "painting",
			"art", "artistic", "create", "creating", "creative", "creativity",
			"design", "designing", "music", "musical", "instrument",
			"guitar", "piano", "sing", "singing", "dance", "dancing",
			"photography", "photo", "photos", "video", "craft", "crafting",
			"blog", "blogging", "content", "story", "stories", "poem", "poetry",
		},
		Patterns: []string{
			`write\s*\d+\s*(word|words|page|pages)`,
			`practice\s*(my\s*)?(guitar|piano|instrument|drawing|painting)`,
			`\d+\s*(min|minute|minutes)\s*(of)?\s*(creative|art|music|writing)`,
		},
	},
	{
		Name: "Self-Care", Icon: "✨", Color: "#A855F7",
		Keywords: []string{
			"skincare", "skin", "shower", "bath", "bathing", "hygiene",
			"teeth", "dental", "floss", "flossing", "brush", "brushing",
			"haircare", "hair", "grooming", "self-care", "selfcare",
			"pamper", "spa", "massage", "manicure", "pedicure", "beauty",
			"appearance", "dress", "outfit", "clothes",
		},
		Patterns: []string{
			`(morning|evening|night)\s*(skincare|routine)`,
			`(brush|floss)\s*(my\s*)?(teeth)`,
			`(take|have)\s*(a\s*)?(shower|bath)`,
		},
	},
	{
		Name: Other, Icon: "📌", Color: "#6B7280",
	},
}
