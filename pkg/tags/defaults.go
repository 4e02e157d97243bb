package tags

// builtinKeys is the order of the built-in table.
//
//nolint:gochecknoglobals // Built-in tag table
var builtinKeys = []string{
	"python",
	"javascript",
	"opencv",
	"react",
	"node",
	"docker",
	"aws",
	"angular",
	DefaultKey,
}

// builtinEntries is used when no tag table can be loaded.
//
//nolint:gochecknoglobals // Built-in tag table
var builtinEntries = map[string]Entry{
	"python": {
		ClassName:       "python",
		BackgroundColor: "#3776ab",
		TextColor:       "white",
		Keywords:        []string{"python", "py"},
	},
	"javascript": {
		ClassName:       "js",
		BackgroundColor: "#f7df1e",
		TextColor:       "black",
		Keywords:        []string{"javascript", "js", "ecmascript"},
	},
	"opencv": {
		ClassName:       "opencv",
		BackgroundColor: "#e74c3c",
		TextColor:       "white",
		Keywords:        []string{"opencv"},
	},
	"react": {
		ClassName:       "react",
		BackgroundColor: "#61dafb",
		TextColor:       "#2c3e50",
		Keywords:        []string{"react", "reactjs"},
	},
	"node": {
		ClassName:       "node",
		BackgroundColor: "#68a063",
		TextColor:       "white",
		Keywords:        []string{"node", "nodejs"},
	},
	"docker": {
		ClassName:       "docker",
		BackgroundColor: "#2496ed",
		TextColor:       "white",
		Keywords:        []string{"docker"},
	},
	"aws": {
		ClassName:       "aws",
		BackgroundColor: "#ff9900",
		TextColor:       "white",
		Keywords:        []string{"aws", "amazon web services"},
	},
	"angular": {
		ClassName:       "angular",
		BackgroundColor: "linear-gradient(135deg, #dd0031, #c3002f)",
		TextColor:       "white",
		Keywords:        []string{"angular", "angularjs"},
	},
	DefaultKey: {
		ClassName:       "default",
		BackgroundColor: "#95a5a6",
		TextColor:       "white",
		Keywords:        []string{"default"},
	},
}

// Default returns a copy of the built-in table.
func Default() (table Table) {
	// The built-in keys and entries always agree, so NewTable cannot fail.
	table, _ = NewTable(builtinKeys, builtinEntries)
	return table
}
