package Insights

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"RoutineMaster/Compliance"
)

const geminiEndpoint = "https://generativelanguage.googleapis.com/v1beta/models/gemini-2.5-flash:generateContent"

var httpClient = &http.Client{Timeout: 30 * time.Second}

var promptTemplates = map[string]string{
	"pt": `Atue como um Especialista Sênior em Gestão Industrial e Melhoria Contínua.
Analise os seguintes dados da fábrica e gere um Plano de Ação conciso e estratégico em formato Markdown.
Responda em PORTUGUÊS.

Gere:
1. Análise Breve da Situação (Identifique gargalos ou problemas de disciplina).
2. 3 Sugestões Práticas para melhoria imediata.
3. Um Plano de Ação estruturado para a próxima semana.`,
	"en": `Act as a Senior Industrial Management and Continuous Improvement Specialist.
Analyze the following factory data and generate a concise and strategic Action Plan in Markdown format.
Respond in ENGLISH.

Generate:
1. Brief Situation Analysis (Identify bottlenecks or discipline issues).
2. 3 Practical Suggestions for immediate improvement.
3. A structured Action Plan for the next week.`,
	"es": `Actúe como un Especialista Senior en Gestión Industrial y Mejora Continua.
Analice los siguientes datos de la fábrica y genere un Plan de Acción conciso y estratégico en formato Markdown.
Responda en ESPAÑOL.

Genere:
1. Breve Análisis de la Situación (Identifique cuellos de botella o problemas de disciplina).
2. 3 Sugerencias Prácticas para la mejora inmediata.
3. Un Plan de Acción estructurado para la próxima semana.`,
}

// BuildPrompt assembles the action-plan prompt from the aggregate
// counters. Unknown languages fall back to Portuguese, the plant's
// default.
func BuildPrompt(data Compliance.InsightData, language string) string {
	base, ok := promptTemplates[language]
	if !ok {
		base = promptTemplates["pt"]
	}

	var b strings.Builder
	b.WriteString(base)
	b.WriteString("\n\nDATA:\n")
	fmt.Fprintf(&b, "- Scrap: %g\n", data.TotalScrap)
	fmt.Fprintf(&b, "- Downtime: %g\n", data.TotalDowntime)
	fmt.Fprintf(&b, "- Tasks Completed: %d\n", data.Completed)
	fmt.Fprintf(&b, "- Tasks Missed: %d\n", data.Missed)
	b.WriteString("\nRECENT LOGS:\n")
	b.WriteString(strings.Join(data.RecentLogs, "\n"))
	b.WriteString("\n\nKeep the tone professional and direct.")
	return b.String()
}

type geminiRequest struct {
	Contents []geminiContent `json:"contents"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
}

// GenerateActionPlan sends the prompt to the text-generation service
// and returns its prose untouched. Requires GEMINI_API_KEY.
func GenerateActionPlan(data Compliance.InsightData, language string) (string, error) {
	apiKey := os.Getenv("GEMINI_API_KEY")
	if apiKey == "" {
		return "", fmt.Errorf("GEMINI_API_KEY is not set")
	}

	payload := geminiRequest{
		Contents: []geminiContent{{Parts: []geminiPart{{Text: BuildPrompt(data, language)}}}},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, geminiEndpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", apiKey)

	resp, err := httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("text generation service returned status %d", resp.StatusCode)
	}

	var result geminiResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", err
	}
	if len(result.Candidates) == 0 || len(result.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("no response generated")
	}

	return result.Candidates[0].Content.Parts[0].Text, nil
}
