package server

import (
	"encoding/json"
	"net/http"

	"github.com/Fritz-nvm/Telex-AI-agent/a2a"
)

// DefaultAgentCardPath is the default path for serving the agent card.
const DefaultAgentCardPath = "/.well-known/agent.json"

// DefaultAgentCard describes the country facts agent.
func DefaultAgentCard(baseURL string) *a2a.AgentCard {
	return &a2a.AgentCard{
		Name:        "Country Facts Agent",
		Description: "Answers questions about countries with key facts and one LLM-generated cultural fact.",
		URL:         baseURL,
		Version:     "1.0.0",
		Capabilities: a2a.AgentCapabilities{
			Streaming:         false,
			PushNotifications: true,
		},
		DefaultInputModes:  []string{"text/plain"},
		DefaultOutputModes: []string{"text/plain"},
		Skills: []a2a.AgentSkill{
			{
				ID:          "country-facts",
				Name:        "Country facts",
				Description: "Looks up capital, region, population, languages, currencies and timezones of a country and adds a cultural fact.",
				Examples:    []string{"tell me about Japan", "what about Kenya", "France"},
				Tags:        []string{"countries", "facts"},
			},
			{
				ID:          "daily-facts",
				Name:        "Daily facts subscription",
				Description: "Subscribes a conversation to a daily country fact delivered via webhook.",
				Examples:    []string{"/subscribe 09:00 Japan", "/unsubscribe"},
				Tags:        []string{"subscription"},
			},
		},
	}
}

// AgentCardHandler returns an HTTP handler that serves the agent card.
func AgentCardHandler(card *a2a.AgentCard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("Access-Control-Allow-Origin", "*") // Allow CORS for discovery

		jsonData, err := json.MarshalIndent(card, "", "  ")
		if err != nil {
			http.Error(w, "Internal Server Error", http.StatusInternalServerError)
			return
		}

		w.Write(jsonData)
	}
}

// healthDocument is the body of the health endpoint: service status plus the
// declared capabilities, derived from the agent card.
type healthDocument struct {
	Status       string                `json:"status"`
	Agent        string                `json:"agent"`
	Capabilities a2a.AgentCapabilities `json:"capabilities"`
}

// HealthHandler returns an HTTP handler for the health endpoint.
func HealthHandler(card *a2a.AgentCard) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc := healthDocument{
			Status:       "ok",
			Agent:        card.Name,
			Capabilities: card.Capabilities,
		}

		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(doc)
	}
}
