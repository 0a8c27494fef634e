package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientDataInt(t *testing.T) {
	data := ClientData{
		"int":     42,
		"int64":   int64(43),
		"float":   float64(44.7),
		"number":  json.Number("45"),
		"badnum":  json.Number("not a number"),
		"string":  "46",
		"missing": nil,
	}

	tests := []struct {
		name     string
		key      string
		expected int64
		ok       bool
	}{
		{name: "native int", key: "int", expected: 42, ok: true},
		{name: "int64", key: "int64", expected: 43, ok: true},
		{name: "float truncated", key: "float", expected: 44, ok: true},
		{name: "json number", key: "number", expected: 45, ok: true},
		{name: "bad json number", key: "badnum", ok: false},
		{name: "string is not a number", key: "string", ok: false},
		{name: "absent key", key: "nope", ok: false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			v, ok := data.Int(tc.key)
			assert.Equal(t, tc.ok, ok)
			if tc.ok {
				assert.Equal(t, tc.expected, v)
			}
		})
	}
}

func TestClientDataString(t *testing.T) {
	data := ClientData{"name": "Алия", "age": 28}

	name, ok := data.String("name")
	assert.True(t, ok)
	assert.Equal(t, "Алия", name)

	_, ok = data.String("age")
	assert.False(t, ok)

	_, ok = data.String("nope")
	assert.False(t, ok)
}

func TestClientRecordJSON(t *testing.T) {
	raw := `{
		"client_code": 7,
		"name": "Айгерим",
		"status": "Зарплатный клиент",
		"age": 29,
		"city": "Алматы",
		"avg_monthly_balance": 850000,
		"currencies": ["KZT", "USD"],
		"top_5_category_spending": {"Такси": 120000},
		"top_5_type_spending": {"salary_in": 600000},
		"product_type": "Карта для путешествий"
	}`

	var record ClientRecord
	require.NoError(t, json.Unmarshal([]byte(raw), &record))

	assert.Equal(t, 7, record.ClientCode)
	assert.Equal(t, StatusSalaried, record.Status)
	assert.Equal(t, int64(850_000), record.AvgMonthlyBalance)
	assert.Equal(t, int64(120_000), record.CategorySpending["Такси"])
	assert.Equal(t, "Карта для путешествий", record.ProductType)
}
