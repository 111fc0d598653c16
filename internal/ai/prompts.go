// ABOUTME: Prompt construction for all provider calls
// ABOUTME: Natural-language instructions plus declared JSON result shapes
package ai

import (
	"fmt"

	"github.com/oniromante/oniromante/internal/models"
)

// chatSystemInstruction is the Oniromante persona preamble, seeded once
// per chat session.
const chatSystemInstruction = `Você é o "Oniromante", uma inteligência artificial mística, empática e sábia.
Atue como um "Mentor dos Sonhos".
1. Ao interpretar: Aprofunde-se nos símbolos. Pergunte sobre cores e sentimentos.
2. Suporte: Se o usuário estiver ansioso, sugira calma.
3. Estilo: Use metáforas oníricas (mar, estrelas, labirintos).
4. Respostas curtas e poéticas.`

// jsonOnlyInstruction asks the provider to conform to a declared shape.
// The shape is re-validated on decode regardless of what comes back.
const jsonOnlyInstruction = "Responda APENAS com um objeto JSON neste formato, sem texto adicional:\n"

const insightsShape = `{"motivation": string, "luckyNumber": integer, "luckyColor": string, "wordOfDay": string, "wordMeaning": string}`

const dreamShape = `{"title": string, "summary": string, "characters": [string], "places": [string], "emotions": [string], "symbols": [string], "isNightmare": boolean, "socialCaption": string (legenda curta e poética para redes sociais), "analysis": {"spiritual": string, "psychological": string, "cultural": string, "ritual": {"title": string, "steps": [string], "duration": "quick"|"deep"}, "dailyTheme": string, "emotionalAlert": string, "emotionsList": [{"name": string, "intensity": integer de 0 a 10, "meaning": string}], "emotionalBalanceTip": string}}`

const symbolShape = `{"name": string, "meaning": string, "psychological": string, "spiritual": string, "cultural": string, "advice": string}`

const nightShape = `{"message": string, "breathing": string (instrução curta de respiração, ex: Inspire 4s, Segure 4s), "intention": string (frase para repetir antes de dormir), "theme": "stars"|"moon"|"void"|"calm"}`

func insightsPrompt() string {
	return "Gere insights místicos e motivacionais para o dia de hoje.\n" +
		jsonOnlyInstruction + insightsShape
}

func dreamPrompt(rawText string) string {
	return fmt.Sprintf("Analise o relato de sonho. Estruture os dados, extraia emoções com intensidade e gere recomendações de equilíbrio:\n\n%q\n%s%s",
		rawText, jsonOnlyInstruction, dreamShape)
}

func symbolPrompt(term string) string {
	return fmt.Sprintf("Explique o simbolismo de %q nos sonhos.\n%s%s",
		term, jsonOnlyInstruction, symbolShape)
}

func nightPrompt(mood string) string {
	return fmt.Sprintf("O usuário está se sentindo %q. Gere uma mensagem poética de \"Boa Noite\" e preparação para o sono.\n%s%s",
		mood, jsonOnlyInstruction, nightShape)
}

// stylePrompts maps each art style to its image prompt prefix.
var stylePrompts = map[models.ArtStyle]string{
	models.StyleFantasy:    "Epic high fantasy digital art, magical atmosphere",
	models.StyleSurreal:    "Surrealist masterpiece, Salvador Dali style, dreamlike",
	models.StyleWatercolor: "Soft watercolor painting, ethereal, bleeding colors",
	models.StyleCyberpunk:  "Cyberpunk neon noir, futuristic, vaporwave aesthetics",
	models.StyleMinimalist: "Minimalist abstract art, geometric shapes, clean lines",
	models.StyleOil:        "Classical oil painting, texture, dramatic lighting",
}

func imagePrompt(summary string, style models.ArtStyle) string {
	prefix, ok := stylePrompts[style]
	if !ok {
		prefix = stylePrompts[models.StyleSurreal]
	}
	return fmt.Sprintf("%s. Visual representation of: %s. High quality, artistic.", prefix, summary)
}

// contextPrimingMessage formats the silent user-status message fed to a
// fresh chat session. Empty when the status carries no signal.
func contextPrimingMessage(status *models.UserStatus) string {
	if status == nil || (status.Mood == "" && status.Sleep == "" && status.SleepNotes == "") {
		return ""
	}
	mood := string(status.Mood)
	if mood == "" {
		mood = "não informado"
	}
	sleep := string(status.Sleep)
	if sleep == "" {
		sleep = "não informado"
	}
	notes := status.SleepNotes
	if notes == "" {
		notes = "nenhuma"
	}
	return fmt.Sprintf("[Contexto do Sistema: O usuário está se sentindo %q, sono: %q. Notas do sono: %q. Use isso para calibrar sua empatia.]",
		mood, sleep, notes)
}
