package cli

import (
	"github.com/spf13/viper"

	"codeberg.org/snonux/articletrans/internal/llm"
	"codeberg.org/snonux/articletrans/internal/translator"
)

// TranslatorConfig assembles the Azure Translator settings from flags,
// environment variables and the config file, in that order of precedence.
func TranslatorConfig() translator.Config {
	return translator.Config{
		Key:      viper.GetString("translator.key"),
		Endpoint: viper.GetString("translator.endpoint"),
		Region:   viper.GetString("translator.region"),
	}
}

// OpenAIConfig assembles the Azure OpenAI settings from flags, environment
// variables and the config file, in that order of precedence.
func OpenAIConfig() llm.Config {
	return llm.Config{
		Endpoint:   viper.GetString("openai.endpoint"),
		Key:        viper.GetString("openai.key"),
		Deployment: viper.GetString("openai.deployment"),
		APIVersion: viper.GetString("openai.api_version"),
	}
}
