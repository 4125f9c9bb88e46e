package orchestrator

import (
	"fmt"
	"strings"

	"github.com/caiomarinho/gemflow/internal/gem"
)

const divider = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// WelcomeMessage renders the system introduction and the gem roster.
func (o *Orchestrator) WelcomeMessage() string {
	var b strings.Builder
	b.WriteString(`
╔══════════════════════════════════════════════════════════════════════╗
║                 🌟 SAC LEARNING GEMS 🌟                              ║
║            Sistema de Aprendizado Modular                             ║
╚══════════════════════════════════════════════════════════════════════╝

Bem-vindo ao Sistema de Amplificação Cognitiva!

Este é um conjunto de 7 Gems (agentes) especializados que revolucionam
a curva de aprendizado através de **aprendizado interativo** — prática
guiada por agentes que trabalham em conjunto.

💎 **Como funciona:**
- Cada GEM é um especialista que se comunica com os outros
- Você será guiado sequencialmente por 7 etapas
- Os GEMs compartilham contexto para personalizar sua jornada
- No final, você terá um sistema personalizado operacional

🗺️ **Os 7 GEMs:**

`)
	for i, def := range o.gems.All() {
		fmt.Fprintf(&b, "%d. %s %s - %s (%s)\n", i+1, def.Emoji, def.Name, def.Role, def.Duration)
	}
	b.WriteString(`
📊 **Tempo total estimado:** 4-6 horas (distribuídas em vários dias)

🎯 **Resultado final:** Um KBF (assistente IA personalizado) que te conhece
   e adapta cada sugestão à sua realidade única.

` + divider + `

Digite 'iniciar' para começar pelo GEM 1: Mestre do Mapeamento
Digite 'status' para ver seu progresso atual
Digite 'listar' para ver todos os GEMs disponíveis
`)
	return b.String()
}

// StatusMessage renders journey progress.
func (o *Orchestrator) StatusMessage() string {
	if o.state.StartedAt == nil {
		return "❌ Você ainda não iniciou sua jornada pelos GEMs.\nDigite 'iniciar' para começar!"
	}

	completed := len(o.state.CompletedGems)
	total := o.gems.Len()
	progress := float64(completed) / float64(total) * 100

	var b strings.Builder
	fmt.Fprintf(&b, `
📊 **SEU PROGRESSO:**

⏰ Iniciado em: %s
📈 Progresso: %d/%d GEMs completos (%.0f%%)

✅ **GEMs Completados:**
`, o.state.StartedAt.Format("2006-01-02 15:04"), completed, total, progress)

	for _, gemID := range o.state.CompletedGems {
		if def, ok := o.gems.ByID(gemID); ok {
			fmt.Fprintf(&b, "   %s %s\n", def.Emoji, def.Name)
		}
	}

	if def, active := o.CurrentGem(); active {
		fmt.Fprintf(&b, "\n🔄 **GEM Atual:**\n   %s %s\n", def.Emoji, def.Name)
	}

	if remaining := total - completed; remaining > 0 {
		fmt.Fprintf(&b, "\n📋 **Restam %d GEMs**\n", remaining)
	} else {
		b.WriteString("\n🎉 **Parabéns! Você completou todos os GEMs!**\n")
	}
	return b.String()
}

// ListGems renders the roster with per-gem completion markers.
func (o *Orchestrator) ListGems() string {
	var b strings.Builder
	b.WriteString("\n📚 **TODOS OS 7 GEMs:**\n\n")
	for i, def := range o.gems.All() {
		marker := "⭕"
		if o.state.IsCompleted(def.ID) {
			marker = "✅"
		}
		fmt.Fprintf(&b, "%s **%d. %s %s**\n", marker, i+1, def.Emoji, def.Name)
		fmt.Fprintf(&b, "   %s\n", def.Role)
		fmt.Fprintf(&b, "   📋 %s\n\n", def.Specialty)
	}
	return b.String()
}

func startMessage(first gem.Definition) string {
	return fmt.Sprintf(`
🚀 **JORNADA INICIADA!**

Bem-vindo ao primeiro GEM da sua jornada de transformação:

%s **%s**
📋 %s
⏰ Duração estimada: %s

`+divider+`

💬 **Como começar sua conversa:**

O agente vai se apresentar de forma acolhedora e guiar você com perguntas claras durante todo o processo.

✅ **Para iniciar, você pode simplesmente dizer:**
   • "Olá" ou "Oi"
   • "Estou pronto para começar"
   • Ou começar direto contando sobre sua situação atual

🎯 **Relaxe!** O agente vai te guiar passo a passo com empatia e clareza.
Não existe resposta errada - apenas honestidade e abertura.

📝 **Dica:** Cada GEM trabalha de forma independente, então não se preocupe
    com o que foi dito antes. Foque apenas na conversa atual.

Digite sua mensagem abaixo para começar! 👇
`, first.Emoji, first.Name, first.Role, first.Duration)
}

func gemCompleteMessage(completed, next gem.Definition) string {
	return fmt.Sprintf(`
╔══════════════════════════════════════════════════════════════╗
║              ✅ GEM COMPLETADO!                               ║
╚══════════════════════════════════════════════════════════════╝

Parabéns! Você completou:
%s **%s**

`+divider+`

🎯 **PRÓXIMO PASSO:**

%s **%s**
📋 %s
⏰ Duração estimada: %s

💡 **O que você precisa:**
- %s está completo
- Tenha em mãos o output que você recebeu
- Separe %s de foco

`+divider+`

Digite 'continuar' quando estiver pronto para o próximo GEM!
Ou digite 'status' para ver seu progresso completo.
`, completed.Emoji, completed.Name,
		next.Emoji, next.Name, next.Role, next.Duration,
		completed.Name, next.Duration)
}

func journeyCompleteMessage() string {
	return `
╔══════════════════════════════════════════════════════════════╗
║          🎉 PARABÉNS! JORNADA COMPLETADA! 🎉                 ║
╚══════════════════════════════════════════════════════════════╝

Você completou todos os 7 GEMs do Sistema SAC Learning!

✅ **Você agora tem:**
- Mapeamento completo de seus papéis (M.A.P.A.)
- Diagnóstico claro do problema (F.O.C.O.)
- Validação estratégica do investimento
- Método científico validado (Método Ouro)
- Domínio ativo certificado
- Plano de implementação macro
- KBF personalizado operacional

` + divider + `

📖 **PRÓXIMO PASSO: Manual de OPERADOR PRÁTICO**

Agora use o Manual de OPERADOR PRÁTICO para:
1. Executar diariamente com seu KBF
2. Gravar feedbacks (Otter.ai)
3. Alimentar seu KBF com transcrições reais
4. Evoluir continuamente baseado em dados reais

🎯 **Lembre-se:** Este não é o fim, é o COMEÇO da implementação!

Digite 'reiniciar' para começar uma nova jornada
Digite 'status' para revisar seu progresso
`
}

func resetMessage() string {
	return `
🔄 **JORNADA REINICIADA**

Todos os dados anteriores foram preservados em um backup.
Você pode começar uma nova jornada agora!

Digite 'iniciar' para começar do zero.
`
}
