package classify

// extensionLanguages maps file extensions to the language shown in the
// overlay. Lookups use the lowercased extension including the dot.
var extensionLanguages = map[string]string{
	".py":    "Python",
	".ipynb": "Python",
	".sql":   "SQL",
	".r":     "R",
	".ttl":   "Ttl",
	".sas":   "SAS",
	".js":    "JavaScript",
	".ts":    "TypeScript",
	".java":  "Java",
	".cpp":   "C++",
	".cs":    "C#",
	".php":   "PHP",
	".rb":    "Ruby",
	".swift": "Swift",
	".go":    "Go",
	".rs":    "Rust",
}

// appNames lists known application names in match order: first substring hit
// against the lowercased window title wins. More specific names go before
// their prefixes (notepad++ before notepad, vs code variants before code).
var appNames = []string{
	"sql server management studio",
	"visual studio code",
	"notepad++",
	"rstudio",
	"jupyter",
	"spyder",
	"pycharm",
	"sublime",
	"vscode",
	"firefox",
	"chrome",
	"edge",
	"word",
	"excel",
	"powerpoint",
	"outlook",
	"notepad",
	"steam",
	"terminal",
	"powershell",
	"cmd.exe",
	"slack",
	"discord",
	"teams",
}
