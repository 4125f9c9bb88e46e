package orchestrator

import (
	"fmt"
	"strings"

	"github.com/caiomarinho/gemflow/internal/journey"
)

const (
	maxUserExcerpt      = 200
	maxAssistantExcerpt = 300
	maxExcerpts         = 3
)

// SharedContext renders the carry-forward block injected into the next
// gem's system prompt: each completed gem's structured output plus a
// short excerpt of its conversation. Empty while nothing is completed.
func (o *Orchestrator) SharedContext() string {
	if len(o.state.CompletedGems) == 0 {
		return ""
	}

	rule := strings.Repeat("=", 70)
	var b strings.Builder
	b.WriteString("**📚 CONTEXTO DA SUA JORNADA (GEMs anteriores):**\n\n")
	b.WriteString("Use as informações abaixo para personalizar sua abordagem.\n")

	for _, gemID := range o.state.CompletedGems {
		def, ok := o.gems.ByID(gemID)
		if !ok {
			continue
		}
		fmt.Fprintf(&b, "\n%s\n", rule)
		fmt.Fprintf(&b, "**%s %s:**\n\n", def.Emoji, def.Name)

		if out, ok := o.state.GemOutputs[gemID]; ok && out.Output != "" {
			fmt.Fprintf(&b, "**Resultado:**\n%s\n\n", out.Output)
		}

		userLines, assistantLines := conversationExcerpts(o.state.Conversation(gemID))
		if len(userLines) > 0 || len(assistantLines) > 0 {
			b.WriteString("**Principais pontos da conversa:**\n")
			if len(userLines) > 0 {
				b.WriteString("\nO que o usuário compartilhou:\n")
				b.WriteString(strings.Join(userLines, "\n"))
				b.WriteString("\n")
			}
			if len(assistantLines) > 0 {
				b.WriteString("\nPrincipais descobertas/recomendações:\n")
				b.WriteString(strings.Join(assistantLines, "\n"))
				b.WriteString("\n")
			}
		}
	}

	fmt.Fprintf(&b, "\n%s\n\n", rule)
	b.WriteString("**💡 IMPORTANTE:**\n")
	b.WriteString("- Use essas informações para NÃO pedir dados que já foram coletados\n")
	b.WriteString("- Personalize sua abordagem com base no perfil e contexto revelado\n")
	b.WriteString("- Mantenha continuidade emocional e técnica com a jornada anterior\n")
	return b.String()
}

// conversationExcerpts picks the first few user and assistant turns,
// truncated so the carry-forward block stays bounded no matter how long
// the source conversation ran.
func conversationExcerpts(msgs []journey.Message) ([]string, []string) {
	var users, assistants []string
	for _, msg := range msgs {
		switch msg.Role {
		case journey.RoleUser:
			if len(users) < maxExcerpts {
				users = append(users, "  - "+truncate(msg.Content, maxUserExcerpt))
			}
		case journey.RoleAssistant:
			if len(assistants) < maxExcerpts {
				assistants = append(assistants, "  - "+truncate(msg.Content, maxAssistantExcerpt))
			}
		}
	}
	return users, assistants
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + "..."
}
