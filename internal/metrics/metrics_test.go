/*
Copyright 2026 Chaordic.
Licensed under the Apache License, Version 2.0.
*/

package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestInvocationTotal_Defined(t *testing.T) {
	if InvocationTotal == nil {
		t.Error("InvocationTotal should not be nil")
	}
}

func TestInvocationDuration_Defined(t *testing.T) {
	if InvocationDuration == nil {
		t.Error("InvocationDuration should not be nil")
	}
}

func TestDeregistrationTotal_Defined(t *testing.T) {
	if DeregistrationTotal == nil {
		t.Error("DeregistrationTotal should not be nil")
	}
}

func TestCapacityAdjustmentTotal_Defined(t *testing.T) {
	if CapacityAdjustmentTotal == nil {
		t.Error("CapacityAdjustmentTotal should not be nil")
	}
}

func TestRoleAssumptionTotal_Defined(t *testing.T) {
	if RoleAssumptionTotal == nil {
		t.Error("RoleAssumptionTotal should not be nil")
	}
}

func TestHandler_ExposesCounters(t *testing.T) {
	InvocationTotal.WithLabelValues("terminate", ResultSuccess).Inc()
	DeregistrationTotal.WithLabelValues("target-group", ResultSuccess).Inc()

	srv := httptest.NewServer(Handler())
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	if err != nil {
		t.Fatalf("scrape failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("scrape status = %d, want %d", resp.StatusCode, http.StatusOK)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("read scrape body: %v", err)
	}

	for _, name := range []string{
		"spot_drainer_invocation_total",
		"spot_drainer_deregistration_total",
	} {
		if !strings.Contains(string(body), name) {
			t.Errorf("scrape output missing %s", name)
		}
	}
}

func TestDeregistrationTotal_Increments(t *testing.T) {
	before := testutil.ToFloat64(DeregistrationTotal.WithLabelValues("target-group", ResultSuccess))
	DeregistrationTotal.WithLabelValues("target-group", ResultSuccess).Inc()
	after := testutil.ToFloat64(DeregistrationTotal.WithLabelValues("target-group", ResultSuccess))

	if after != before+1 {
		t.Errorf("DeregistrationTotal = %v, want %v", after, before+1)
	}
}
