package service

import (
	"strings"

	"github.com/caiomarinho/gemflow/internal/gem"
)

// detector decides whether a gem reply closes the gem. The primary
// signal is the gem's marker as a plain substring; a few gems also
// declare secondary phrases, or stall phrases that only count once the
// conversation has run long enough.
type detector struct {
	marker string

	// signals are lowercase phrases that complete the gem on their own.
	signals []string

	// pairedSignals complete the gem when every phrase of a pair
	// appears in the same reply.
	pairedSignals [][]string

	// stallSignals complete the gem only when the assistant has already
	// produced at least minAssistantTurns replies.
	stallSignals      []string
	minAssistantTurns int
}

// detectorFor builds the detector for a gem. The first gem carries
// extra heuristics: models often announce the mapping is done without
// printing the structured block, and long sessions need a way out.
func detectorFor(def gem.Definition) detector {
	d := detector{marker: def.Marker}
	if def.ID == "gem1_mestre_mapeamento" {
		d.signals = []string{
			"sua sessão com o mestre do mapeamento está completa",
			"mapeamento m.a.p.a. completo",
			"id do mapeamento",
		}
		d.pairedSignals = [][]string{
			{"próximo agente", "diagnosticador f.o.c.o"},
		}
		d.stallSignals = []string{"pronto para avançar", "está pronto"}
		d.minAssistantTurns = 8
	}
	return d
}

// complete reports whether reply finishes the gem. assistantTurns is
// the number of assistant replies already in the history, including
// this one.
func (d detector) complete(reply string, assistantTurns int) bool {
	if d.marker != "" && strings.Contains(reply, d.marker) {
		return true
	}

	lower := strings.ToLower(reply)
	for _, signal := range d.signals {
		if strings.Contains(lower, signal) {
			return true
		}
	}
	for _, pair := range d.pairedSignals {
		all := true
		for _, phrase := range pair {
			if !strings.Contains(lower, phrase) {
				all = false
				break
			}
		}
		if all {
			return true
		}
	}
	if assistantTurns >= d.minAssistantTurns && d.minAssistantTurns > 0 {
		for _, signal := range d.stallSignals {
			if strings.Contains(lower, signal) {
				return true
			}
		}
	}
	return false
}

// nudgeSignals are replies that announce completion without producing
// the structured output the protocol requires.
var nudgeSignals = []string{
	"você está pronto para avançar",
	"pronto para avançar com a próxima etapa",
	"está pronto para continuar",
	"podemos avançar",
}

// needsOutputNudge reports whether the gem tried to wrap up without
// emitting its structured output id. Only the first gem gets the
// re-prompt; later gems follow their formats reliably once they have
// carried context.
func needsOutputNudge(def gem.Definition, reply string) bool {
	if def.ID != "gem1_mestre_mapeamento" {
		return false
	}
	if strings.Contains(reply, def.Marker) {
		return false
	}
	lower := strings.ToLower(reply)
	for _, signal := range nudgeSignals {
		if strings.Contains(lower, signal) {
			return true
		}
	}
	return false
}

// extractOutput pulls the structured output token from a closing
// reply: the first line carrying "ID" or one of the catalog's output-id
// prefixes. Falls back to a synthetic token so completion never stalls
// on a malformed reply.
func extractOutput(reply, gemID string, prefixes []string) string {
	for _, line := range strings.Split(reply, "\n") {
		if strings.Contains(line, "ID") {
			return strings.TrimSpace(line)
		}
		for _, prefix := range prefixes {
			if strings.Contains(line, prefix) {
				return strings.TrimSpace(line)
			}
		}
	}
	return "Completed: " + gemID
}
