package prompt_test

import (
	"fmt"

	"github.com/blipee-dev/promptstack/internal/prompt"
)

// ExamplePipeline_BuildPrompt demonstrates building a provider-tuned
// prompt from a request with rich context and a user profile.
func ExamplePipeline_BuildPrompt() {
	pipeline, err := prompt.New(prompt.Config{})
	if err != nil {
		panic(err)
	}

	result, err := pipeline.BuildPrompt(&prompt.Request{
		Message: "How did our emissions change this quarter?",
		Context: &prompt.ContextGraph{
			Sustainability: map[string]any{"total_emissions": 1240.5, "risk_level": "medium"},
			Financial:      map[string]any{"budget": 500000},
			Operational:    map[string]any{"sites_reporting": 12},
		},
		Intent:       &prompt.Intent{Category: "emissions_calculation"},
		User:         &prompt.UserProfile{Role: "analyst", CommunicationStyle: "technical"},
		Organization: &prompt.OrganizationProfile{Name: "Acme Retail", Industry: "retail"},
		Provider:     prompt.ProviderAnthropic,
	})
	if err != nil {
		panic(err)
	}

	fmt.Println("layers:", result.Metadata.LayerCount)
	fmt.Println("tier:", result.Metadata.Tier)
	for _, a := range result.Applied {
		fmt.Println("applied:", a.Name)
	}
	// Output:
	// layers: 6
	// tier: standard
	// applied: anthropic-reasoning
}

// ExamplePipeline_BuildPrompt_unknownProvider shows the one fatal
// condition: an unrecognized provider identifier.
func ExamplePipeline_BuildPrompt_unknownProvider() {
	pipeline, err := prompt.New(prompt.Config{})
	if err != nil {
		panic(err)
	}

	_, err = pipeline.BuildPrompt(&prompt.Request{Provider: "mistral"})
	fmt.Println(err)
	// Output:
	// [PROMPT_PROVIDER_UNKNOWN] unsupported provider "mistral": no token ceiling configured
}
