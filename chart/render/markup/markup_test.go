package markup

import (
	"bytes"
	"strings"
	"testing"

	"github.com/hnimtadd/knitchart/chart/color"
	"github.com/hnimtadd/knitchart/chart/css"
	"github.com/hnimtadd/knitchart/chart/grid"
	"github.com/hnimtadd/knitchart/chart/point"
	"github.com/hnimtadd/knitchart/chart/render"
	"github.com/hnimtadd/knitchart/chart/render/decorator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mergedTable(t *testing.T, sheet *css.Sheet) *render.Table {
	t.Helper()
	front := grid.NewSimpleGrid(point.GridLayerOne, 1, 2)
	back := grid.NewSimpleGrid(point.GridLayerTwo, 1, 2)
	front.SetCell(0, 0, color.Gray)
	merged, err := grid.NewMergedGrid(point.GridMerged, front, back)
	require.NoError(t, err)

	r := render.Regular(merged, render.WithSheet(sheet))
	r.SetLabelDecorator(decorator.NewMergedFlatLabels())
	r.SetPurlDecorator(decorator.EvenPurl{})
	return r.Render()
}

func TestRender_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, mergedTable(t, css.NewSheet())))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, `<table class="tblrdr user-select-none" data-grid="merged">`))
	assert.Contains(t, out,
		`<td class="prtexact bdrcell rszcell" style="background: white" data-grid="layer-two" data-row="0" data-col="0">•</td>`)
	assert.Contains(t, out,
		`<td class="prtexact bdrcell rszcell" style="background: darkgray" data-grid="layer-one" data-row="0" data-col="0"></td>`)
	assert.Contains(t, out, `<th class="rszcell"><small>1</small></th>`)
	assert.Contains(t, out, `<tr class="footer"><th></th><th colspan="2" class="rszcell"><small>2</small></th>`)
	assert.Contains(t, out, `<th colspan="2" class="mleft rszcell"><small>1</small></th><th></th></tr>`)
}

func TestDocument(t *testing.T) {
	sheet := css.NewSheet()
	table := mergedTable(t, sheet)

	var buf bytes.Buffer
	require.NoError(t, Document(&buf, "Chart <1>", sheet, render.Panel{Title: "Combined", Table: table}))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html><html><head>"))
	assert.Contains(t, out, "<title>Chart &lt;1&gt;</title>")
	assert.Contains(t, out, ".rszcell { height: 20px; width: 20px }")
	assert.Contains(t, out, "th.mleft{border-left:1px solid black}")
	assert.Contains(t, out, `<div class="panel"><h2>Combined</h2><table`)
}

func TestAddScript(t *testing.T) {
	sheet := css.NewSheet()
	page := Page("Chart", sheet, render.Panel{Table: mergedTable(t, sheet)})
	AddScript(page, "if (a < b) { go() }")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, page))
	out := buf.String()
	assert.True(t, strings.HasSuffix(out, "<script>if (a < b) { go() }</script></body></html>"))
	assert.NotContains(t, out, "<h2>")
}
