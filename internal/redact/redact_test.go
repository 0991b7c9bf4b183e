package redact

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tomlshield/tomlshield/internal/scan"
)

func render(t *testing.T, doc string, opts scan.Options) Output {
	t.Helper()
	res, err := scan.Scan(doc, opts)
	require.NoError(t, err)
	return Render(res, opts)
}

func TestRender_EndToEndExample(t *testing.T) {
	doc := `[database]
host = "localhost"
password = "super_secret_password"
api_key = "sk-1234567890abcdef"
timeout = 30
`
	out := render(t, doc, scan.DefaultOptions())

	want := `[database]
host = "localhost"
password = "***REDACTED***"
api_key = "***REDACTED***"
timeout = 30
`
	assert.Equal(t, want, out.Text)

	require.Len(t, out.Findings, 2)
	assert.Equal(t, "password", out.Findings[0].Key)
	assert.Equal(t, "api_key", out.Findings[1].Key)
	for _, f := range out.Findings {
		assert.Equal(t, "database", f.Section)
	}
}

func TestRender_StructurePreservation(t *testing.T) {
	doc := "[app]\r\n" +
		"\tname = \"demo\"   \r\n" +
		"\r\n" +
		"# deployment notes\n" +
		"weird line without equals\n" +
		"[[array.tables]]\n" +
		"password = \"x\"\n" +
		"count = 3 # inline\n"

	out := render(t, doc, scan.DefaultOptions())

	inLines := strings.SplitAfter(doc, "\n")
	outLines := strings.SplitAfter(out.Text, "\n")
	require.Equal(t, len(inLines), len(outLines))
	for i := range inLines {
		if strings.HasPrefix(strings.TrimSpace(inLines[i]), "password") {
			continue
		}
		assert.Equal(t, inLines[i], outLines[i], "line %d must be byte-identical", i+1)
	}
}

func TestRender_Idempotent(t *testing.T) {
	doc := `[auth]
token = "eyJhbGciOiJIUzI1NiJ9.payload.sig"
secret = "Xk29fmQp81LzR4tYw6Bn"
note = "plain"
`
	opts := scan.DefaultOptions()

	first := render(t, doc, opts)
	second := render(t, first.Text, opts)

	assert.Equal(t, first.Text, second.Text)
}

func TestRender_PreservesQuotesAndInlineComment(t *testing.T) {
	doc := "api_key = \"sk-abcdef\" # production key\n" +
		"passwd = 'hunter2'\n"
	out := render(t, doc, scan.DefaultOptions())

	assert.Equal(t,
		"api_key = \"***REDACTED***\" # production key\n"+
			"passwd = '***REDACTED***'\n",
		out.Text)
}

func TestRender_UnquotedValueBareMarker(t *testing.T) {
	out := render(t, "token = abc123def456\n", scan.DefaultOptions())
	assert.Equal(t, "token = ***REDACTED***\n", out.Text)
}

func TestRender_CustomMarker(t *testing.T) {
	opts := scan.DefaultOptions()
	opts.Marker = "[HIDDEN]"
	out := render(t, "password = \"x\"\n", opts)
	assert.Equal(t, "password = \"[HIDDEN]\"\n", out.Text)
}

func TestRender_CommentsUntouchedByDefault(t *testing.T) {
	doc := "# password = \"x\"\nhost = \"db\"\n"
	out := render(t, doc, scan.DefaultOptions())
	assert.Equal(t, doc, out.Text)
	assert.Empty(t, out.Findings)
}

func TestRender_IncludeCommentsRedactsBehindHash(t *testing.T) {
	opts := scan.DefaultOptions()
	opts.IncludeComments = true
	out := render(t, "# password = \"hunter2\"\n", opts)

	assert.Equal(t, "# password = \"***REDACTED***\"\n", out.Text)
	require.Len(t, out.Findings, 1)
	assert.Equal(t, "password", out.Findings[0].Key)
}

func TestRender_RemoveComments(t *testing.T) {
	doc := "# header comment\nhost = \"db\"\n  # indented comment\npassword = \"x\"\n"
	opts := scan.DefaultOptions()
	opts.RemoveComments = true
	out := render(t, doc, opts)

	assert.Equal(t, "host = \"db\"\npassword = \"***REDACTED***\"\n", out.Text)
}

func TestRender_NoTrailingNewlineAdded(t *testing.T) {
	out := render(t, "password = \"x\"", scan.DefaultOptions())
	assert.Equal(t, "password = \"***REDACTED***\"", out.Text)
}

func TestRender_FindingsIndependentOfText(t *testing.T) {
	doc := "password = \"a\"\ntoken = \"b\"\nhost = \"c\"\n"
	out := render(t, doc, scan.DefaultOptions())

	require.Len(t, out.Findings, 2)
	assert.Equal(t, 1, out.Findings[0].Line)
	assert.Equal(t, 2, out.Findings[1].Line)
}
