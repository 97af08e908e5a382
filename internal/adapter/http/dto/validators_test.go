package dto

import (
	"testing"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validate(t *testing.T, s any) error {
	t.Helper()
	v, ok := binding.Validator.Engine().(*validator.Validate)
	require.True(t, ok)
	return v.Struct(s)
}

func TestSafeID(t *testing.T) {
	tests := []struct {
		name    string
		sn      string
		wantErr bool
	}{
		{"plain serial", "PD202405000001", false},
		{"with separators", "SN_01-a.b", false},
		{"empty", "", true},
		{"space", "SN 01", true},
		{"query injection", "sn=1&x=2", true},
		{"path traversal", "../etc", true},
		{"unicode", "SN-é", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validate(t, SNQuery{SN: tt.sn})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDeliveryTaskPayload_Validation(t *testing.T) {
	executeTask := true
	valid := DeliveryTaskPayload{
		Type:         "NEW",
		DeliverySort: "AUTO",
		ExecuteTask:  &executeTask,
		Trays: []DeliveryTray{
			{Destinations: []DeliveryDestination{{Destination: "Table-5"}}},
		},
	}
	assert.NoError(t, validate(t, valid))

	badType := valid
	badType.Type = "REPLACE"
	assert.Error(t, validate(t, badType))

	badSort := valid
	badSort.DeliverySort = "RANDOM"
	assert.Error(t, validate(t, badSort))

	noExecute := valid
	noExecute.ExecuteTask = nil
	assert.Error(t, validate(t, noExecute))

	// execute_task=false is a valid value, not a missing one.
	executeFalse := false
	deferred := valid
	deferred.ExecuteTask = &executeFalse
	assert.NoError(t, validate(t, deferred))

	emptyTrays := valid
	emptyTrays.Trays = nil
	assert.Error(t, validate(t, emptyTrays))

	emptyDest := valid
	emptyDest.Trays = []DeliveryTray{{Destinations: []DeliveryDestination{{}}}}
	assert.Error(t, validate(t, emptyDest))
}

func TestDeliveryActionPayload_Validation(t *testing.T) {
	for _, action := range []string{"START", "COMPLETE", "CANCEL_ALL_DELIVERY", "PAUSE", "RESUME"} {
		assert.NoError(t, validate(t, DeliveryActionPayload{Action: action}), action)
	}
	assert.Error(t, validate(t, DeliveryActionPayload{Action: "STOP"}))
	assert.Error(t, validate(t, DeliveryActionPayload{}))
}

func TestPositionCommandPayload_Validation(t *testing.T) {
	assert.NoError(t, validate(t, PositionCommandPayload{Interval: 2, Times: 10}))
	assert.Error(t, validate(t, PositionCommandPayload{Interval: 0, Times: 10}))
	assert.Error(t, validate(t, PositionCommandPayload{Interval: 2, Times: 1001}))
}

func TestCustomCallRequest_Body(t *testing.T) {
	sn := "SN-001"
	req := CustomCallRequest{
		SN:             &sn,
		MapName:        "Floor-1",
		Point:          "P-3",
		CallDeviceName: "pager-7",
		Extra:          map[string]any{"call_mode": 1},
	}
	body := req.Body()
	assert.Equal(t, "SN-001", body["sn"])
	assert.Equal(t, "Floor-1", body["map_name"])
	assert.Equal(t, "P-3", body["point"])
	assert.Equal(t, "pager-7", body["call_device_name"])
	assert.Equal(t, 1, body["call_mode"])

	req.SN = nil
	_, ok := req.Body()["sn"]
	assert.False(t, ok)
}
