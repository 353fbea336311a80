package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"membrane-calculator/domain"
)

type ExplanationService struct {
	apiKey     string
	apiURL     string
	model      string
	enabled    bool
	httpClient *http.Client
}

type chatRequest struct {
	Model     string        `json:"model"`
	Messages  []chatMessage `json:"messages"`
	MaxTokens int           `json:"max_tokens,omitempty"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

const explanationSystemPrompt = "Du er energirådgiver med speciale i bygningsmembraner. " +
	"Du forklarer investeringer i membraner klart og præcist på dansk, " +
	"altid med beløb i danske kroner og CO₂ i tons."

// NewExplanationService creates the service. Without an API key it only
// produces the fallback text.
func NewExplanationService(apiKey, apiURL, model string, timeout time.Duration) *ExplanationService {
	return &ExplanationService{
		apiKey:  apiKey,
		apiURL:  apiURL,
		model:   model,
		enabled: apiKey != "",
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (s *ExplanationService) Enabled() bool {
	return s.enabled
}

// Explain generates a short narrative explanation of a result.
func (s *ExplanationService) Explain(
	ctx context.Context,
	params domain.ParameterSet,
	result domain.ComputationResult,
) string {
	if !s.enabled {
		return FallbackExplanation(result)
	}

	summary := Summarize(result)
	prompt := fmt.Sprintf(`Forklar denne beregning af en bygningsmembran for en bygningsejer.

BYGNING:
- Areal: %s m²
- Energitype: %s
- Forbrug: opvarmning %s og køling %s kWh/m²/år
- Forventet energibesparelse: %s %%

RESULTAT:
%s

INSTRUKTIONER:
1. Forklar hvad break-even betyder for netop denne bygning.
2. Nævn beløbene i kroner og CO₂-udledningen i tons.
3. Hvis der ikke er nogen årlig besparelse, så sig tydeligt at membranen ikke tjener sig hjem.

Skriv 3-4 sætninger.`,
		FormatAmount(params.Area), params.EnergyType.Label(),
		FormatAmount(params.HeatingConsumption), FormatAmount(params.CoolingConsumption),
		FormatAmount(params.SavingsPercent),
		"- "+strings.Join(summary.Lines(), "\n- "))

	explanation, err := s.callLLM(ctx, prompt)
	if err != nil {
		zap.S().Named("explanation_service").Warnw("explanation request failed, using fallback", "error", err)
		return FallbackExplanation(result)
	}

	return explanation
}

func (s *ExplanationService) callLLM(ctx context.Context, prompt string) (string, error) {
	reqBody := chatRequest{
		Model: s.model,
		Messages: []chatMessage{
			{Role: "system", Content: explanationSystemPrompt},
			{Role: "user", Content: prompt},
		},
		MaxTokens: explanationMaxTokens,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", err
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", fmt.Errorf("API error (status %d): %s", resp.StatusCode, string(body))
	}

	var chatResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&chatResp); err != nil {
		return "", err
	}

	if len(chatResp.Choices) == 0 || strings.TrimSpace(chatResp.Choices[0].Message.Content) == "" {
		return "", fmt.Errorf("no response from explanation API")
	}

	return strings.TrimSpace(chatResp.Choices[0].Message.Content), nil
}

// FallbackExplanation is the deterministic text used when no API is available.
func FallbackExplanation(result domain.ComputationResult) string {
	if !result.PaysBack() {
		return fmt.Sprintf(
			"Med de angivne parametre giver membranen ingen årlig besparelse, så investeringen på %s kr. tjenes ikke hjem. "+
				"Break-even vises derfor som 0 år.",
			FormatAmount(result.MembraneInvestment))
	}

	text := fmt.Sprintf(
		"Membranen koster %s kr. og sparer %s kr. om året, så den er tjent hjem efter %s år. "+
			"Over %d år giver det en samlet besparelse på %s kr.",
		FormatAmount(result.MembraneInvestment),
		FormatAmount(result.YearlySavings),
		FormatFixed(result.BreakEvenYears, 1),
		ProjectionYears,
		FormatAmount(result.YearlySavings*ProjectionYears))

	if result.BreakEvenYears > ProjectionYears {
		text += fmt.Sprintf(" Break-even ligger uden for projektionens %d år.", ProjectionYears)
	}
	return text
}
