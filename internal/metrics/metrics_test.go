package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestMustRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NotPanics(t, func() { MustRegister(reg) })

	// Registering the same collectors twice on one registry is a programming error.
	require.Panics(t, func() { MustRegister(reg) })
}

func TestReportsTotal_CountsByResult(t *testing.T) {
	before := testutil.ToFloat64(ReportsTotal.WithLabelValues("ok"))
	ReportsTotal.WithLabelValues("ok").Inc()
	require.Equal(t, before+1, testutil.ToFloat64(ReportsTotal.WithLabelValues("ok")))
}
