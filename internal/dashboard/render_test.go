package dashboard

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"admissions-dashboard/internal/admissions"
)

func TestHighlight(t *testing.T) {
	assert.Equal(t, TierHigh, Highlight(1001))
	assert.Equal(t, TierMedium, Highlight(1000))
	assert.Equal(t, TierMedium, Highlight(501))
	assert.Equal(t, TierLow, Highlight(500))
	assert.Equal(t, TierLow, Highlight(0))
}

func loadedView(t *testing.T, from, to string) View {
	t.Helper()
	snap := admissions.NewResponder(admissions.ResponderConfig{
		TrendWindowDays: 10,
		Now:             func() time.Time { return time.Date(2024, time.April, 10, 12, 0, 0, 0, time.UTC) },
	}).Snapshot()
	c := NewController(&scriptedFetcher{results: []fetchResult{{snap: &snap}}}, nil)
	require.NoError(t, c.Refresh(context.Background()))
	c.SetRange(from, to)
	return c.View()
}

func TestRender_Loaded(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, loadedView(t, "", "")))
	out := buf.String()

	assert.Contains(t, out, "3,110 [high]")
	assert.Contains(t, out, "2,239 [high]")
	assert.Contains(t, out, "560 [medium]")
	assert.Contains(t, out, "Computer Science")
	assert.Contains(t, out, "2024-04-01 .. 2024-04-10")
	assert.Contains(t, out, "Generated at 2024-04-10T12:00:00.000Z")
}

func TestRender_EmptyRange(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, loadedView(t, "2030-01-01", "")))
	assert.Contains(t, buf.String(), "No data in selected range")
	assert.Contains(t, buf.String(), "(2030-01-01 .. -)")
}

func TestRender_LoadingWithoutData(t *testing.T) {
	var buf bytes.Buffer
	v := View{State: State{}.Begin(1)}
	require.NoError(t, Render(&buf, v))
	assert.Contains(t, buf.String(), "Loading analytics")
	assert.NotContains(t, buf.String(), "Programs Summary")
}

func TestRender_ErrorKeepsPriorData(t *testing.T) {
	v := loadedView(t, "", "")
	v.State = v.State.Begin(2).Fail(2)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, v))
	out := buf.String()
	assert.Contains(t, out, FetchFailedMessage)
	assert.Contains(t, out, "Programs Summary")
}

func TestRenderTrendTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, RenderTrendTable(&buf, threeDays))
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 4)
	assert.True(t, strings.HasPrefix(lines[1], "2024-01-01"))

	buf.Reset()
	require.NoError(t, RenderTrendTable(&buf, nil))
	assert.Equal(t, "No data in selected range\n", buf.String())
}
