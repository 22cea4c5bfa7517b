package commands

import (
	"bytes"
	"fmt"
	"log/slog"
	"text/template"

	"github.com/Masterminds/sprig/v3"
	"github.com/airstripone/oceania/internal/display"
	"github.com/airstripone/oceania/internal/protocol"
)

// narrativeTexts maps a narrative key to its line template. Templates
// access fields of the originating command via {{ .FieldName }}.
var narrativeTexts = map[string]string{
	"journal": "You write in your secret journal. Your thoughtcrime increases.",
	"rest":    "You rest for a while, recovering slightly.",

	"interact": "You interact with {{.NpcName}}. (Interaction type {{.InteractionType}} - logic not implemented yet)",
	"search":   "You search the area, but find nothing of interest (logic not implemented yet).",
	"work":     "You perform your duties for the Party (logic not implemented yet).",

	"search_texts":       "You search for forbidden texts. (logic not implemented yet)",
	"read_text":          "You open {{.TextID}} with trembling hands. (logic not implemented yet)",
	"hide_text":          "You hide {{.TextID}} {{.HidingPlace}}. (logic not implemented yet)",
	"destroy_text":       "You feed {{.TextID}} into the memory hole. (logic not implemented yet)",
	"memorize":           "You spend {{.TimeInvested}} hours dwelling on {{.Topic}}. (logic not implemented yet)",
	"share_knowledge":    "You cautiously share what you know with {{.TargetNpc}}. (logic not implemented yet)",
	"voluntary_exchange": "You offer {{.Offer}} to {{.TargetNpc}} in exchange for {{.Request}}. (logic not implemented yet)",
	"disable_telescreen": "You attempt to disable the telescreen: {{.Method}}. (logic not implemented yet)",
}

var templateFuncs = sprig.TxtFuncMap()

// ExpandTemplate expands a template string using the provided data.
func ExpandTemplate(tmplStr string, data any) (string, error) {
	tmpl, err := template.New("").Funcs(templateFuncs).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parsing template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("executing template: %w", err)
	}

	return buf.String(), nil
}

// narrative renders a narrative line for a command, wrapped for the
// client display. A rendering failure degrades to a generic line so
// the player is never left without a response.
func narrative(key string, data any) protocol.NarrativeUpdate {
	text, ok := narrativeTexts[key]
	if !ok {
		slog.Error("unknown narrative key", "key", key)
		return protocol.NarrativeUpdate("Nothing happens.")
	}

	line, err := ExpandTemplate(text, data)
	if err != nil {
		slog.Error("rendering narrative", "key", key, "error", err)
		return protocol.NarrativeUpdate("Nothing happens.")
	}

	return protocol.NarrativeUpdate(display.Wrap(display.Capitalize(line)))
}
