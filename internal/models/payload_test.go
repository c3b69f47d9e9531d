package models

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreatePlanRequest_TotalAmount(t *testing.T) {
	cases := map[string]string{
		`"1 234,500"`:    "1234.5",
		"\"12 000,250\"": "12000.25",
		`"10000.001"`:    "10000.001",
		`2500.75`:        "2500.75",
		`null`:           "0",
		`""`:             "0",
	}
	for in, want := range cases {
		var req CreatePlanRequest
		err := json.Unmarshal([]byte(`{"counterpartyName":"Sahel","installmentCount":4,"firstDueDate":"2025-04-30","totalAmount":`+in+`}`), &req)
		require.NoError(t, err, in)
		assert.True(t, req.TotalAmount.Equal(decimal.RequireFromString(want)), "%s -> %s", in, req.TotalAmount)
		assert.Equal(t, "Sahel", req.CounterpartyName)
		assert.Equal(t, 4, req.InstallmentCount)
		assert.Equal(t, "2025-04-30", req.FirstDueDate.Format("2006-01-02"))
	}
}

func TestCreatePlanRequest_TotalAmountInvalid(t *testing.T) {
	var req CreatePlanRequest
	err := json.Unmarshal([]byte(`{"totalAmount":"douze"}`), &req)
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "totalAmount", verr.Field)

	err = json.Unmarshal([]byte(`{"totalAmount":true}`), &req)
	assert.ErrorAs(t, err, &verr)
}
