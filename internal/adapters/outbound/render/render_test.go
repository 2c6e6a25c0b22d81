package render_test

import (
	"encoding/json"
	"testing"

	"github.com/playbill/playbill/internal/adapters/outbound/render"
	"github.com/playbill/playbill/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bigCo() domain.StatementData {
	return domain.StatementData{
		Customer: "BigCo",
		Performances: []domain.EnrichedPerformance{
			{Play: domain.Play{Name: "Hamlet", Genre: "tragedy"}, Audience: 55, Price: 65000, Credits: 25},
			{Play: domain.Play{Name: "As You Like It", Genre: "comedy"}, Audience: 35, Price: 58000, Credits: 12},
			{Play: domain.Play{Name: "Othello", Genre: "tragedy"}, Audience: 40, Price: 50000, Credits: 10},
		},
		TotalPrice:   173000,
		TotalCredits: 47,
	}
}

func TestPlainText_BigCo(t *testing.T) {
	want := "Statement for BigCo\n" +
		" Hamlet: $650.00 (55 seats)\n" +
		" As You Like It: $580.00 (35 seats)\n" +
		" Othello: $500.00 (40 seats)\n" +
		"Amount owed is $1730.00\n" +
		"You earned 47 credits\n"
	assert.Equal(t, want, render.PlainText(bigCo()))
}

func TestPlainText_Empty(t *testing.T) {
	data := domain.StatementData{Customer: "Nobody", Performances: []domain.EnrichedPerformance{}}
	assert.Equal(t, "Statement for Nobody\nAmount owed is $0.00\nYou earned 0 credits\n", render.PlainText(data))
}

func TestHTML_BigCo(t *testing.T) {
	want := "<h1>Statement for BigCo</h1>\n" +
		"<table>\n" +
		"<tr><th>play</th><th>seats</th><th>cost</th></tr>\n" +
		" <tr><td>Hamlet</td><td>55</td><td>$650.00</td></tr>\n" +
		" <tr><td>As You Like It</td><td>35</td><td>$580.00</td></tr>\n" +
		" <tr><td>Othello</td><td>40</td><td>$500.00</td></tr>\n" +
		"</table>\n" +
		"<p>Amount owed is <em>$1730.00</em></p>\n" +
		"<p>You earned <em>47</em> credits</p>\n"
	assert.Equal(t, want, render.HTML(bigCo()))
}

func TestHTML_EscapesNames(t *testing.T) {
	data := domain.StatementData{
		Customer:     "Smith & <Sons>",
		Performances: []domain.EnrichedPerformance{{Play: domain.Play{Name: "R&J"}, Audience: 1, Price: 100}},
		TotalPrice:   100,
	}
	out := render.HTML(data)
	assert.Contains(t, out, "Smith &amp; &lt;Sons&gt;")
	assert.Contains(t, out, "<td>R&amp;J</td>")
}

func TestTerminal_ContainsStatement(t *testing.T) {
	out := render.Terminal(bigCo())
	assert.Contains(t, out, "Statement")
	assert.Contains(t, out, "BigCo")
	assert.Contains(t, out, "Hamlet")
	assert.Contains(t, out, "As You Like It")
	assert.Contains(t, out, "$650.00")
	assert.Contains(t, out, "$1730.00")
	assert.Contains(t, out, "47")
}

func TestTerminal_Empty(t *testing.T) {
	out := render.Terminal(domain.StatementData{Customer: "Nobody"})
	assert.Contains(t, out, "No performances booked.")
	assert.Contains(t, out, "$0.00")
}

func TestJSON_CarriesCentsAndFormatted(t *testing.T) {
	out, err := render.JSON(bigCo())
	require.NoError(t, err)

	var v render.StatementView
	require.NoError(t, json.Unmarshal([]byte(out), &v))
	assert.Equal(t, "BigCo", v.Customer)
	assert.Equal(t, int64(173000), v.TotalPrice)
	assert.Equal(t, "$1730.00", v.TotalFormatted)
	assert.Equal(t, int64(47), v.TotalCredits)
	require.Len(t, v.Performances, 3)
	assert.Equal(t, "As You Like It", v.Performances[1].Play)
	assert.Equal(t, "comedy", v.Performances[1].Genre)
	assert.Equal(t, "$580.00", v.Performances[1].PriceFormatted)
}

func TestRender_AllFormatsAgreeOnNumbers(t *testing.T) {
	for _, f := range []render.Format{render.FormatText, render.FormatHTML, render.FormatTerminal, render.FormatJSON} {
		out, err := render.Render(bigCo(), f)
		require.NoError(t, err, f)
		for _, amount := range []string{"$650.00", "$580.00", "$500.00", "$1730.00", "47"} {
			assert.Contains(t, out, amount, "format %s", f)
		}
	}
}

func TestRender_Idempotent(t *testing.T) {
	for _, f := range []render.Format{render.FormatText, render.FormatHTML, render.FormatTerminal, render.FormatJSON} {
		first, err := render.Render(bigCo(), f)
		require.NoError(t, err)
		second, err := render.Render(bigCo(), f)
		require.NoError(t, err)
		assert.Equal(t, first, second, "format %s", f)
	}
}

func TestRender_DoesNotMutateInput(t *testing.T) {
	data := bigCo()
	_, err := render.Render(data, render.FormatJSON)
	require.NoError(t, err)
	assert.Equal(t, bigCo(), data)
}

func TestRender_UnknownFormat(t *testing.T) {
	_, err := render.Render(bigCo(), render.Format("pdf"))
	assert.Error(t, err)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want render.Format
	}{
		{"text", render.FormatText},
		{"plain", render.FormatText},
		{"html", render.FormatHTML},
		{"markup", render.FormatHTML},
		{"tui", render.FormatTerminal},
		{"json", render.FormatJSON},
	}
	for _, tt := range tests {
		got, err := render.ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := render.ParseFormat("yaml")
	assert.ErrorContains(t, err, `unknown format "yaml"`)
}
