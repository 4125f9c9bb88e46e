package service

import (
	"fmt"

	"github.com/caiomarinho/gemflow/internal/gem"
)

// systemMessage builds the opening system prompt for a gem session: the
// gem's instructions, the journey's shared context and the behavior
// directives that bind the gems together.
func systemMessage(def gem.Definition, sharedContext string) string {
	return fmt.Sprintf(`Você é o %s (%s).

%s

%s

IMPORTANTE:
- Você faz parte de uma jornada com outros GEMs especializados
- Use as informações dos GEMs anteriores para personalizar sua abordagem
- Não peça informações que já foram coletadas anteriormente
- Use linguagem humana, calorosa e empática
- Siga rigorosamente o protocolo descrito nas suas instruções

Comece se apresentando e iniciando o protocolo.`, def.Name, def.Emoji, def.Instructions, sharedContext)
}

// forceCompletionPrompt instructs the model to close the gem now with
// its structured output.
func forceCompletionPrompt(def gem.Definition) string {
	return fmt.Sprintf(
		"O usuário solicitou explicitamente concluir esta etapa agora. "+
			"Forneça imediatamente o output final estruturado exigido para este GEM, "+
			"incluindo o identificador no formato correto e uma síntese dos principais pontos. "+
			"Você é o %s e deve seguir suas instruções formais.", def.Name)
}

// outputNudgePrompt demands the structured output when the model
// announced completion without printing it.
func outputNudgePrompt(def gem.Definition) string {
	return fmt.Sprintf(`ATENÇÃO: Você completou as etapas do protocolo mas não gerou o OUTPUT ESTRUTURADO OBRIGATÓRIO.

Gere AGORA o formato completo conforme as instruções, incluindo:
- ════════════════════════════════════════════
- **MAPEAMENTO M.A.P.A. COMPLETO**
- Todos os papéis identificados
- Papel prioritário com análise F.A.S.I.L.
- Matriz de priorização com scores
- Oportunidades de amplificação
- 📋 **ID DO MAPEAMENTO**: %s[ANO]-[MES]-001
- ════════════════════════════════════════════

Gere este output AGORA e ENCERRE.`, def.Marker)
}
