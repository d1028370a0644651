// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input    string `flag:"b" usage:"register dump text file"`
	Table    string `flag:"j" usage:"field table JSON file"`
	Output   string `flag:"o" usage:"output file (default: stdout)"`
	Simplify string `flag:"simplify" usage:"additionally write the flattened field table to this file"`
	Batch    string `flag:"batch" usage:"batch process register dumps matching pattern (e.g. dumps/*.txt)"`
}

// Flags contains behavior options.
type Flags struct {
	Format string `flag:"f" usage:"output format: table, json, raw, flat, sqlite (default: auto-detect)"`
	Token  string `flag:"token" usage:"column separator of the flattened field table" default:","`
	Size   int    `flag:"size" usage:"register size in bytes" default:"512"`
	Strict bool   `flag:"strict" usage:"reject duplicate ids, reversed ranges and fields without slice"`
	Verify bool   `flag:"verify" usage:"verify that the decoded register re-encodes to the input"`
	Debug  bool   `flag:"debug" usage:"enable debug logging"`
	Quiet  bool   `flag:"q" usage:"quiet mode"`
}

// Program options of the decoder.
type Program struct {
	Parameters
	Flags
}
