package metrics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CMSgov/pixfeed-app/pixfeed/diagnostics"
)

func TestObserveTransform(t *testing.T) {
	m := New()
	warning := diagnostics.Diagnostic{Severity: diagnostics.Warning, Code: diagnostics.RoleEffectiveTimeDefaulted}
	failure := diagnostics.Diagnostic{Severity: diagnostics.Error, Code: diagnostics.SubjectCardinality}

	m.ObserveTransform(true, []diagnostics.Diagnostic{warning}, time.Millisecond)
	m.ObserveTransform(false, []diagnostics.Diagnostic{failure, warning}, time.Millisecond)

	assert.Equal(t, float64(1), testutil.ToFloat64(m.Transforms.WithLabelValues(OutcomeProduced)))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Transforms.WithLabelValues(OutcomeRejected)))
	assert.Equal(t, float64(2), testutil.ToFloat64(m.Diagnostics.WithLabelValues("warning", "MSGW005")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.Diagnostics.WithLabelValues("error", "MSGE04F")))

	expected := `
# HELP pixfeed_transforms_total Registration transforms by outcome
# TYPE pixfeed_transforms_total counter
pixfeed_transforms_total{outcome="produced"} 1
pixfeed_transforms_total{outcome="rejected"} 1
`
	assert.NoError(t, testutil.GatherAndCompare(m.Registry, strings.NewReader(expected), "pixfeed_transforms_total"))
}

func TestNilMetrics(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() { m.ObserveTransform(true, nil, 0) })
}

func TestWriteToTextfile(t *testing.T) {
	m := New()
	m.ObserveTransform(true, nil, time.Millisecond)

	path := filepath.Join(t.TempDir(), "pixfeed.prom")
	require.NoError(t, m.WriteToTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `pixfeed_transforms_total{outcome="produced"} 1`)

	err = m.WriteToTextfile("/this/path/does/not/exist/pixfeed.prom")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to write metrics to /this/path/does/not/exist/pixfeed.prom")
}
