package catalog

import "strings"

// StackMeta describes the display attributes of one known technology.
type StackMeta struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Category string `json:"category"`
	Color    string `json:"color"`
	Icon     string `json:"icon"`
}

// ContactMeta describes the display attributes of one contact channel.
type ContactMeta struct {
	Type  string `json:"type"`
	Label string `json:"label"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// categoryOrder is the fixed rendering order for stack categories. Sections
// always appear in this sequence, never alphabetical or insertion order.
var categoryOrder = []string{
	"language",
	"frontend",
	"mobile",
	"backend",
	"database",
	"infra",
	"collaboration",
	"ai-ml",
	"testing",
	"tool",
}

var stackDefinitions = []StackMeta{
	// language
	{Key: "javascript", Label: "JavaScript", Category: "language", Color: "#F7DF1E", Icon: "javascript"},
	{Key: "typescript", Label: "TypeScript", Category: "language", Color: "#3178C6", Icon: "typescript"},
	{Key: "python", Label: "Python", Category: "language", Color: "#3776AB", Icon: "python"},
	{Key: "java", Label: "Java", Category: "language", Color: "#007396", Icon: "openjdk"},
	{Key: "kotlin", Label: "Kotlin", Category: "language", Color: "#7F52FF", Icon: "kotlin"},
	{Key: "swift", Label: "Swift", Category: "language", Color: "#F05138", Icon: "swift"},
	{Key: "go", Label: "Go", Category: "language", Color: "#00ADD8", Icon: "go"},
	{Key: "rust", Label: "Rust", Category: "language", Color: "#000000", Icon: "rust"},
	{Key: "c", Label: "C", Category: "language", Color: "#A8B9CC", Icon: "c"},
	{Key: "cpp", Label: "C++", Category: "language", Color: "#00599C", Icon: "cplusplus"},
	{Key: "csharp", Label: "C#", Category: "language", Color: "#512BD4", Icon: "csharp"},
	{Key: "ruby", Label: "Ruby", Category: "language", Color: "#CC342D", Icon: "ruby"},
	{Key: "php", Label: "PHP", Category: "language", Color: "#777BB4", Icon: "php"},
	{Key: "dart", Label: "Dart", Category: "language", Color: "#0175C2", Icon: "dart"},

	// frontend
	{Key: "react", Label: "React", Category: "frontend", Color: "#61DAFB", Icon: "react"},
	{Key: "vue", Label: "Vue.js", Category: "frontend", Color: "#4FC08D", Icon: "vuedotjs"},
	{Key: "angular", Label: "Angular", Category: "frontend", Color: "#DD0031", Icon: "angular"},
	{Key: "svelte", Label: "Svelte", Category: "frontend", Color: "#FF3E00", Icon: "svelte"},
	{Key: "nextjs", Label: "Next.js", Category: "frontend", Color: "#000000", Icon: "nextdotjs"},
	{Key: "nuxt", Label: "Nuxt", Category: "frontend", Color: "#00DC82", Icon: "nuxtdotjs"},
	{Key: "tailwind", Label: "Tailwind CSS", Category: "frontend", Color: "#06B6D4", Icon: "tailwindcss"},
	{Key: "html", Label: "HTML5", Category: "frontend", Color: "#E34F26", Icon: "html5"},
	{Key: "css", Label: "CSS3", Category: "frontend", Color: "#1572B6", Icon: "css3"},
	{Key: "vite", Label: "Vite", Category: "frontend", Color: "#646CFF", Icon: "vite"},

	// mobile
	{Key: "flutter", Label: "Flutter", Category: "mobile", Color: "#02569B", Icon: "flutter"},
	{Key: "reactnative", Label: "React Native", Category: "mobile", Color: "#61DAFB", Icon: "react"},
	{Key: "android", Label: "Android", Category: "mobile", Color: "#34A853", Icon: "android"},
	{Key: "ios", Label: "iOS", Category: "mobile", Color: "#000000", Icon: "apple"},

	// backend
	{Key: "nodejs", Label: "Node.js", Category: "backend", Color: "#5FA04E", Icon: "nodedotjs"},
	{Key: "express", Label: "Express", Category: "backend", Color: "#000000", Icon: "express"},
	{Key: "nestjs", Label: "NestJS", Category: "backend", Color: "#E0234E", Icon: "nestjs"},
	{Key: "spring", Label: "Spring", Category: "backend", Color: "#6DB33F", Icon: "spring"},
	{Key: "django", Label: "Django", Category: "backend", Color: "#092E20", Icon: "django"},
	{Key: "fastapi", Label: "FastAPI", Category: "backend", Color: "#009688", Icon: "fastapi"},
	{Key: "flask", Label: "Flask", Category: "backend", Color: "#000000", Icon: "flask"},
	{Key: "gin", Label: "Gin", Category: "backend", Color: "#008ECF", Icon: "gin"},
	{Key: "rails", Label: "Ruby on Rails", Category: "backend", Color: "#D30001", Icon: "rubyonrails"},
	{Key: "graphql", Label: "GraphQL", Category: "backend", Color: "#E10098", Icon: "graphql"},

	// database
	{Key: "mysql", Label: "MySQL", Category: "database", Color: "#4479A1", Icon: "mysql"},
	{Key: "postgresql", Label: "PostgreSQL", Category: "database", Color: "#4169E1", Icon: "postgresql"},
	{Key: "mongodb", Label: "MongoDB", Category: "database", Color: "#47A248", Icon: "mongodb"},
	{Key: "redis", Label: "Redis", Category: "database", Color: "#FF4438", Icon: "redis"},
	{Key: "sqlite", Label: "SQLite", Category: "database", Color: "#003B57", Icon: "sqlite"},
	{Key: "mariadb", Label: "MariaDB", Category: "database", Color: "#003545", Icon: "mariadb"},
	{Key: "elasticsearch", Label: "Elasticsearch", Category: "database", Color: "#005571", Icon: "elasticsearch"},

	// infra
	{Key: "docker", Label: "Docker", Category: "infra", Color: "#2496ED", Icon: "docker"},
	{Key: "kubernetes", Label: "Kubernetes", Category: "infra", Color: "#326CE5", Icon: "kubernetes"},
	{Key: "aws", Label: "AWS", Category: "infra", Color: "#232F3E", Icon: "amazonwebservices"},
	{Key: "gcp", Label: "Google Cloud", Category: "infra", Color: "#4285F4", Icon: "googlecloud"},
	{Key: "azure", Label: "Azure", Category: "infra", Color: "#0078D4", Icon: "microsoftazure"},
	{Key: "nginx", Label: "Nginx", Category: "infra", Color: "#009639", Icon: "nginx"},
	{Key: "terraform", Label: "Terraform", Category: "infra", Color: "#844FBA", Icon: "terraform"},
	{Key: "githubactions", Label: "GitHub Actions", Category: "infra", Color: "#2088FF", Icon: "githubactions"},
	{Key: "jenkins", Label: "Jenkins", Category: "infra", Color: "#D24939", Icon: "jenkins"},
	{Key: "vercel", Label: "Vercel", Category: "infra", Color: "#000000", Icon: "vercel"},

	// collaboration
	{Key: "git", Label: "Git", Category: "collaboration", Color: "#F05032", Icon: "git"},
	{Key: "github", Label: "GitHub", Category: "collaboration", Color: "#181717", Icon: "github"},
	{Key: "gitlab", Label: "GitLab", Category: "collaboration", Color: "#FC6D26", Icon: "gitlab"},
	{Key: "slack", Label: "Slack", Category: "collaboration", Color: "#4A154B", Icon: "slack"},
	{Key: "notion", Label: "Notion", Category: "collaboration", Color: "#000000", Icon: "notion"},
	{Key: "jira", Label: "Jira", Category: "collaboration", Color: "#0052CC", Icon: "jira"},
	{Key: "figma", Label: "Figma", Category: "collaboration", Color: "#F24E1E", Icon: "figma"},
	{Key: "discord", Label: "Discord", Category: "collaboration", Color: "#5865F2", Icon: "discord"},

	// ai-ml
	{Key: "tensorflow", Label: "TensorFlow", Category: "ai-ml", Color: "#FF6F00", Icon: "tensorflow"},
	{Key: "pytorch", Label: "PyTorch", Category: "ai-ml", Color: "#EE4C2C", Icon: "pytorch"},
	{Key: "pandas", Label: "pandas", Category: "ai-ml", Color: "#150458", Icon: "pandas"},
	{Key: "numpy", Label: "NumPy", Category: "ai-ml", Color: "#013243", Icon: "numpy"},
	{Key: "openai", Label: "OpenAI", Category: "ai-ml", Color: "#412991", Icon: "openai"},
	{Key: "huggingface", Label: "Hugging Face", Category: "ai-ml", Color: "#FFD21E", Icon: "huggingface"},

	// testing
	{Key: "jest", Label: "Jest", Category: "testing", Color: "#C21325", Icon: "jest"},
	{Key: "cypress", Label: "Cypress", Category: "testing", Color: "#69D3A7", Icon: "cypress"},
	{Key: "playwright", Label: "Playwright", Category: "testing", Color: "#2EAD33", Icon: "playwright"},
	{Key: "vitest", Label: "Vitest", Category: "testing", Color: "#6E9F18", Icon: "vitest"},
	{Key: "junit", Label: "JUnit", Category: "testing", Color: "#25A162", Icon: "junit5"},

	// tool
	{Key: "vscode", Label: "VS Code", Category: "tool", Color: "#007ACC", Icon: "visualstudiocode"},
	{Key: "intellij", Label: "IntelliJ IDEA", Category: "tool", Color: "#000000", Icon: "intellijidea"},
	{Key: "vim", Label: "Vim", Category: "tool", Color: "#019733", Icon: "vim"},
	{Key: "postman", Label: "Postman", Category: "tool", Color: "#FF6C37", Icon: "postman"},
	{Key: "linux", Label: "Linux", Category: "tool", Color: "#FCC624", Icon: "linux"},
}

var contactDefinitions = []ContactMeta{
	{Type: "mail", Label: "Email", Color: "#EA4335", Icon: "gmail"},
	{Type: "instagram", Label: "Instagram", Color: "#E4405F", Icon: "instagram"},
	{Type: "linkedin", Label: "LinkedIn", Color: "#0A66C2", Icon: "linkedin"},
	{Type: "velog", Label: "Velog", Color: "#20C997", Icon: "velog"},
	{Type: "reddit", Label: "Reddit", Color: "#FF4500", Icon: "reddit"},
	{Type: "facebook", Label: "Facebook", Color: "#0866FF", Icon: "facebook"},
	{Type: "youtube", Label: "YouTube", Color: "#FF0000", Icon: "youtube"},
	{Type: "x", Label: "X", Color: "#000000", Icon: "x"},
	{Type: "thread", Label: "Threads", Color: "#000000", Icon: "threads"},
}

var (
	stackLookup = func() map[string]StackMeta {
		lookup := make(map[string]StackMeta, len(stackDefinitions))
		for _, meta := range stackDefinitions {
			lookup[meta.Key] = meta
		}
		return lookup
	}()
	contactLookup = func() map[string]ContactMeta {
		lookup := make(map[string]ContactMeta, len(contactDefinitions))
		for _, meta := range contactDefinitions {
			lookup[meta.Type] = meta
		}
		return lookup
	}()
)

// LookupStack resolves a stack key to its catalog metadata. The second
// return value is false for unknown keys; callers fall back to their own
// literal fields in that case.
func LookupStack(key string) (StackMeta, bool) {
	meta, ok := stackLookup[strings.ToLower(strings.TrimSpace(key))]
	return meta, ok
}

// LookupContact resolves a contact type to its catalog metadata.
func LookupContact(contactType string) (ContactMeta, bool) {
	meta, ok := contactLookup[strings.ToLower(strings.TrimSpace(contactType))]
	return meta, ok
}

// Categories returns the fixed category enumeration in declared order.
func Categories() []string {
	out := make([]string, len(categoryOrder))
	copy(out, categoryOrder)
	return out
}

// CategoryIndex returns the position of a category in the declared order,
// or len(Categories()) for unknown categories so they sort last.
func CategoryIndex(category string) int {
	for i, cat := range categoryOrder {
		if cat == category {
			return i
		}
	}
	return len(categoryOrder)
}

// KnownCategory reports whether the category is part of the enumeration.
func KnownCategory(category string) bool {
	return CategoryIndex(category) < len(categoryOrder)
}

// StacksByCategory returns the catalog entries for one category in their
// declared order.
func StacksByCategory(category string) []StackMeta {
	out := make([]StackMeta, 0, 8)
	for _, meta := range stackDefinitions {
		if meta.Category == category {
			out = append(out, meta)
		}
	}
	return out
}

// AllStacks returns every catalog entry grouped by the fixed category
// order, for the editor's pick list.
func AllStacks() []StackMeta {
	out := make([]StackMeta, 0, len(stackDefinitions))
	for _, cat := range categoryOrder {
		out = append(out, StacksByCategory(cat)...)
	}
	return out
}

// AllContacts returns every contact type in declared order.
func AllContacts() []ContactMeta {
	out := make([]ContactMeta, len(contactDefinitions))
	copy(out, contactDefinitions)
	return out
}
