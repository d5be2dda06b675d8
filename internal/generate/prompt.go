package generate

import "fmt"

// schemaDescription is embedded in the user prompt. The slot annotations
// steer the model toward sensible role assignments; the closing lines stop
// it from echoing the annotations back into the JSON.
const schemaDescription = `{
  "palette": {
    "0": "HEX_COLOR_STRING",   // background dark
    "1": "HEX_COLOR_STRING",   // red - error
    "2": "HEX_COLOR_STRING",   // green - success
    "3": "HEX_COLOR_STRING",   // yellow - warning
    "4": "HEX_COLOR_STRING",   // blue - info
    "5": "HEX_COLOR_STRING",   // magenta - accent
    "6": "HEX_COLOR_STRING",   // cyan - alt background
    "7": "HEX_COLOR_STRING",   // white - foreground light
    "8": "HEX_COLOR_STRING",   // bright black - UI muted
    "9": "HEX_COLOR_STRING",   // bright red - highlights
    "10": "HEX_COLOR_STRING",  // bright green
    "11": "HEX_COLOR_STRING",  // bright yellow
    "12": "HEX_COLOR_STRING",  // bright blue
    "13": "HEX_COLOR_STRING",  // bright magenta
    "14": "HEX_COLOR_STRING",  // bright cyan
    "15": "HEX_COLOR_STRING"   // bright white
  },
  "background": "HEX_COLOR_STRING",
  "foreground": "HEX_COLOR_STRING",
  "cursor-color": "HEX_COLOR_STRING",
  "selection-background": "HEX_COLOR_STRING",
  "selection-foreground": "HEX_COLOR_STRING"
}
// All color values must be valid 6-digit hexadecimal color codes, e.g., "#RRGGBB".
// The comments (like "// ...") are for explanation and MUST NOT be included in the final JSON output.`

const systemPrompt = "You are an expert JSON generator. You will be given a schema description " +
	"and a theme keyword. You must return a valid JSON object matching the schema, " +
	"inspired by the keyword. Only output the JSON object, with no surrounding text or markdown."

func userPrompt(keyword string) string {
	return fmt.Sprintf(`You are a helpful assistant that generates color themes for the Ghostty terminal.
The user wants a theme inspired by the keyword: %q.

Please generate a valid JSON configuration for a Ghostty theme.
The JSON output MUST strictly adhere to the following schema and structure:
%s

Ensure all color values are 6-digit hexadecimal strings starting with '#' (e.g., "#RRGGBB").
Do NOT include any comments (like "// ...") in the JSON output.
Do NOT output any text or explanations before or after the JSON object.
The output must be only the JSON object itself, parseable by a standard JSON parser.`, keyword, schemaDescription)
}
