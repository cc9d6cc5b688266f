package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"codeberg.org/snonux/articletrans/internal"
	"codeberg.org/snonux/articletrans/internal/chunk"
)

// CreateDocxCommand creates and configures the docxtrans root command
func CreateDocxCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "docxtrans",
		Short: "Translate .docx documents with the Azure Translator Text API",
		Long: `docxtrans reads a .docx file, translates its paragraphs with the
Azure Translator Text API and writes a translated copy to a new file.
The input file is never modified.

Credentials are read from AZURE_TRANSLATOR_KEY, AZURE_TRANSLATOR_ENDPOINT
and AZURE_TRANSLATOR_REGION, or from the config file.

Examples:
  docxtrans -i article.docx --to pt-br
  docxtrans -i article.docx --to de --from en -o article_de.docx`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	setupDocxFlags(rootCmd, flags)

	return rootCmd
}

// CreateURLCommand creates and configures the urltrans root command
func CreateURLCommand(flags *Flags) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "urltrans",
		Short: "Translate web articles with Azure OpenAI",
		Long: `urltrans fetches a web page, extracts its readable text and translates
it with an Azure OpenAI chat-completion deployment. The translation is
written to a Markdown file named after the page, or to stdout.

Only static HTML is supported; pages that need JavaScript to render
their content cannot be translated.

Credentials are read from AZURE_OPENAI_ENDPOINT, AZURE_OPENAI_KEY and
AZURE_OPENAI_DEPLOYMENT, or from the config file.

Examples:
  urltrans -u https://example.com/article --to pt-br
  urltrans -u https://example.com/article --to de --stdout`,
		Args:    cobra.NoArgs,
		Version: internal.Version,
	}

	setupURLFlags(rootCmd, flags)

	return rootCmd
}

func setupDocxFlags(cmd *cobra.Command, flags *Flags) {
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.articletrans.yaml)")

	cmd.Flags().StringVarP(&flags.InputPath, "input", "i", "", "Input .docx file")
	cmd.Flags().StringVarP(&flags.TargetLang, "to", "t", flags.TargetLang, "Target language code")
	cmd.Flags().StringVarP(&flags.OutputPath, "output", "o", "", "Output file path (default: <input>_<lang>.docx)")
	cmd.Flags().StringVar(&flags.SourceLang, "from", "", "Source language code (default: auto-detect)")
	cmd.Flags().IntVar(&flags.ChunkSize, "chunk-size", chunk.DefaultRequestLimit, "Maximum characters per translation request")
	cmd.Flags().StringVar(&flags.TranslatorEndpoint, "endpoint", "", "Azure Translator endpoint (or set AZURE_TRANSLATOR_ENDPOINT)")
	cmd.Flags().StringVar(&flags.TranslatorKey, "key", "", "Azure Translator subscription key (or set AZURE_TRANSLATOR_KEY)")
	cmd.Flags().StringVar(&flags.TranslatorRegion, "region", "", "Azure Translator region (or set AZURE_TRANSLATOR_REGION)")
	cmd.Flags().BoolVar(&flags.Verbose, "verbose", false, "Enable per-chunk progress output")

	cmd.MarkFlagRequired("input")

	viper.BindPFlag("translator.endpoint", cmd.Flags().Lookup("endpoint"))
	viper.BindPFlag("translator.key", cmd.Flags().Lookup("key"))
	viper.BindPFlag("translator.region", cmd.Flags().Lookup("region"))
}

func setupURLFlags(cmd *cobra.Command, flags *Flags) {
	cmd.PersistentFlags().StringVar(&flags.CfgFile, "config", "", "config file (default is $HOME/.articletrans.yaml)")

	cmd.Flags().StringVarP(&flags.URL, "url", "u", "", "URL of the article to translate")
	cmd.Flags().StringVarP(&flags.TargetLang, "to", "t", flags.TargetLang, "Target language code")
	cmd.Flags().StringVarP(&flags.OutputPath, "output", "o", "", "Output file path (default: derived from the URL)")
	cmd.Flags().BoolVar(&flags.ToStdout, "stdout", false, "Print the translation to stdout instead of a file")
	cmd.Flags().IntVar(&flags.ChunkSize, "chunk-size", chunk.DefaultPromptLimit, "Maximum characters per translation prompt")
	cmd.Flags().StringVar(&flags.OpenAIEndpoint, "endpoint", "", "Azure OpenAI endpoint (or set AZURE_OPENAI_ENDPOINT)")
	cmd.Flags().StringVar(&flags.OpenAIKey, "key", "", "Azure OpenAI API key (or set AZURE_OPENAI_KEY)")
	cmd.Flags().StringVar(&flags.OpenAIDeployment, "deployment", "", "Azure OpenAI deployment name (or set AZURE_OPENAI_DEPLOYMENT)")
	cmd.Flags().StringVar(&flags.OpenAIAPIVersion, "api-version", "", "Azure OpenAI API version (default: 2023-05-15)")
	cmd.Flags().BoolVar(&flags.Verbose, "verbose", false, "Enable per-chunk progress output")

	cmd.MarkFlagRequired("url")

	viper.BindPFlag("openai.endpoint", cmd.Flags().Lookup("endpoint"))
	viper.BindPFlag("openai.key", cmd.Flags().Lookup("key"))
	viper.BindPFlag("openai.deployment", cmd.Flags().Lookup("deployment"))
	viper.BindPFlag("openai.api_version", cmd.Flags().Lookup("api-version"))
}

// InitConfig initializes viper configuration
func InitConfig(cfgFile string) {
	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error getting home directory: %v\n", err)
			return
		}

		// Search config in home directory with name ".articletrans" (without extension)
		viper.AddConfigPath(home)
		viper.AddConfigPath(".")
		viper.SetConfigType("yaml")
		viper.SetConfigName(".articletrans")
	}

	// Azure credentials come from the environment unless overridden by flags
	viper.BindEnv("translator.key", "AZURE_TRANSLATOR_KEY")
	viper.BindEnv("translator.endpoint", "AZURE_TRANSLATOR_ENDPOINT")
	viper.BindEnv("translator.region", "AZURE_TRANSLATOR_REGION")
	viper.BindEnv("openai.endpoint", "AZURE_OPENAI_ENDPOINT")
	viper.BindEnv("openai.key", "AZURE_OPENAI_KEY")
	viper.BindEnv("openai.deployment", "AZURE_OPENAI_DEPLOYMENT")
	viper.BindEnv("openai.api_version", "AZURE_OPENAI_API_VERSION")

	// Read config file
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
