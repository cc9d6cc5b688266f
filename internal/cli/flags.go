package cli

// Flags holds all command-line flag values for both translator binaries
type Flags struct {
	// General flags
	CfgFile    string
	Verbose    bool
	TargetLang string
	OutputPath string
	ChunkSize  int

	// Docx translator flags
	InputPath  string
	SourceLang string

	// URL translator flags
	URL      string
	ToStdout bool

	// Azure Translator credential overrides
	TranslatorEndpoint string
	TranslatorKey      string
	TranslatorRegion   string

	// Azure OpenAI credential overrides
	OpenAIEndpoint   string
	OpenAIKey        string
	OpenAIDeployment string
	OpenAIAPIVersion string
}

// NewFlags creates a new Flags instance with default values
func NewFlags() *Flags {
	return &Flags{
		TargetLang: "pt-br",
	}
}
