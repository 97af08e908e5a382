package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"pudu-fleet-gateway/internal/adapter/http/dto"
	"pudu-fleet-gateway/internal/core/ports"
	"pudu-fleet-gateway/internal/core/ports/mocks"
	"pudu-fleet-gateway/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func jsonResult(doc string) *ports.CloudResult {
	var data any
	if err := json.Unmarshal([]byte(doc), &data); err != nil {
		panic(err)
	}
	return &ports.CloudResult{StatusCode: http.StatusOK, Data: data}
}

// --- Robot Handler Tests ---

func TestRobotList_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCloud := mocks.NewMockCloudService(ctrl)
	h := NewRobotHandler(mockCloud)

	mockCloud.EXPECT().
		ListRobots(gomock.Any(), "dev-1", "grp-2", "").
		Return(jsonResult(`{"code":0,"data":{"robots":[{"sn":"SN-001"}]}}`), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?device=dev-1&group_id=grp-2", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, float64(0), data["code"])
	assert.NotEmpty(t, resp["request_id"])
}

func TestRobotList_MissingParams(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewRobotHandler(mocks.NewMockCloudService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?device=dev-1", nil)

	h.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VAL_001")
}

func TestRobotList_UnsafeParam(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewRobotHandler(mocks.NewMockCloudService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?device=dev%201&group_id=grp-2", nil)

	h.List(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestRobotGroups_ForwardsLanguage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCloud := mocks.NewMockCloudService(ctrl)
	h := NewRobotHandler(mockCloud)

	mockCloud.EXPECT().
		ListRobotGroups(gomock.Any(), "", "", "en").
		Return(jsonResult(`{"code":0}`), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/", nil)
	c.Request.Header.Set("Language", "en")

	h.ListGroups(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRobotPositionCommand_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCloud := mocks.NewMockCloudService(ctrl)
	h := NewRobotHandler(mockCloud)

	req := dto.PositionCommandRequest{
		SN:      "SN-001",
		Payload: dto.PositionCommandPayload{Interval: 5, Times: 100, Source: "openAPI"},
	}
	mockCloud.EXPECT().
		PositionCommand(gomock.Any(), req, "").
		Return(jsonResult(`{"code":0}`), nil)

	body, _ := json.Marshal(req)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.PositionCommand(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRobotPositionCommand_BadInterval(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewRobotHandler(mocks.NewMockCloudService(ctrl))

	body := []byte(`{"sn":"SN-001","payload":{"interval":0,"times":10}}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.PositionCommand(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Map Handler Tests ---

func TestMapCurrent_NeedElement(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCloud := mocks.NewMockCloudService(ctrl)
	h := NewMapHandler(mockCloud)

	mockCloud.EXPECT().
		CurrentMap(gomock.Any(), "SN-001", gomock.Not(gomock.Nil()), "").
		Return(jsonResult(`{"code":0,"data":{"map_name":"Floor-1"}}`), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?sn=SN-001&need_element=true", nil)

	h.Current(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMapStoreList_NonNumericShopID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewMapHandler(mocks.NewMockCloudService(ctrl))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?shop_id=abc", nil)

	h.StoreList(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestMapDetail_AllowsHashInName(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCloud := mocks.NewMockCloudService(ctrl)
	h := NewMapHandler(mockCloud)

	mockCloud.EXPECT().
		MapDetail(gomock.Any(), "42", "Floor#2", "").
		Return(jsonResult(`{"code":0}`), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?shop_id=42&map_name=Floor%232", nil)

	h.Detail(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Mission Handler Tests ---

func TestCall_MergesExtraFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCloud := mocks.NewMockCloudService(ctrl)
	h := NewMissionHandler(mockCloud)

	mockCloud.EXPECT().
		CustomCall(gomock.Any(), map[string]any{
			"sn":               "SN-001",
			"map_name":         "Floor-1",
			"point":            "P-3",
			"call_device_name": "pager-7",
			"call_mode":        "CALL",
		}, "").
		Return(jsonResult(`{"code":0,"data":{"task_id":"T-1"}}`), nil)

	body := []byte(`{"sn":"SN-001","map_name":"Floor-1","point":"P-3","call_device_name":"pager-7","extra":{"call_mode":"CALL"}}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Call(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCall_MissingPoint(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewMissionHandler(mocks.NewMockCloudService(ctrl))

	body := []byte(`{"map_name":"Floor-1","call_device_name":"pager-7"}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Call(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestListCalls_DefaultLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCloud := mocks.NewMockCloudService(ctrl)
	h := NewMissionHandler(mockCloud)

	mockCloud.EXPECT().
		ListCalls(gomock.Any(), "SN-001", 10, "").
		Return(jsonResult(`{"code":0,"data":[]}`), nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?sn=SN-001", nil)

	h.ListCalls(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

// --- Delivery Handler Tests ---

func TestDeliveryCreateTask_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCloud := mocks.NewMockCloudService(ctrl)
	h := NewDeliveryHandler(mockCloud)

	mockCloud.EXPECT().
		DeliveryTask(gomock.Any(), gomock.Any(), "").
		Return(jsonResult(`{"code":0}`), nil)

	body := []byte(`{
		"sn": "SN-001",
		"payload": {
			"type": "NEW",
			"delivery_sort": "AUTO",
			"execute_task": false,
			"trays": [{"destinations": [{"destination": "Table-5"}]}]
		}
	}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CreateTask(c)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestDeliveryCreateTask_MissingExecuteTask(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewDeliveryHandler(mocks.NewMockCloudService(ctrl))

	body := []byte(`{
		"sn": "SN-001",
		"payload": {
			"type": "NEW",
			"delivery_sort": "AUTO",
			"trays": [{"destinations": [{"destination": "Table-5"}]}]
		}
	}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.CreateTask(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeliveryAction_InvalidAction(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	h := NewDeliveryHandler(mocks.NewMockCloudService(ctrl))

	body := []byte(`{"sn":"SN-001","payload":{"action":"STOP"}}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.Action(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Error translation ---

func TestStatusBySN_UpstreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCloud := mocks.NewMockCloudService(ctrl)
	h := NewStatusHandler(mockCloud)

	mockCloud.EXPECT().
		StatusBySN(gomock.Any(), "SN-001", "").
		Return(nil, &service.UpstreamError{Status: 403, Body: `{"error":"forbidden"}`})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?sn=SN-001", nil)

	h.BySN(c)

	assert.Equal(t, http.StatusBadGateway, w.Code)
	assert.Contains(t, w.Body.String(), "UP_001")
	assert.Contains(t, w.Body.String(), "403")
}

func TestStatusBySN_NetworkError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCloud := mocks.NewMockCloudService(ctrl)
	h := NewStatusHandler(mockCloud)

	mockCloud.EXPECT().
		StatusBySN(gomock.Any(), "SN-001", "").
		Return(nil, &service.NetworkError{Err: assert.AnError})

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?sn=SN-001", nil)

	h.BySN(c)

	assert.Equal(t, http.StatusGatewayTimeout, w.Code)
	assert.Contains(t, w.Body.String(), "NET_001")
}

func TestRecharge_RawFallbackPayload(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockCloud := mocks.NewMockCloudService(ctrl)
	h := NewStatusHandler(mockCloud)

	mockCloud.EXPECT().
		RechargeV1(gomock.Any(), "SN-001", "").
		Return(&ports.CloudResult{StatusCode: http.StatusOK, Raw: "OK"}, nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/?sn=SN-001", nil)

	h.RechargeV1(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "OK", data["raw"])
	assert.Equal(t, float64(200), data["status_code"])
}

// --- Callback Handler Tests ---

func TestCallbackRobotPose_Success(t *testing.T) {
	h := NewCallbackHandler(zerolog.Nop())

	body := []byte(`{
		"callback_type": "notifyRobotPose",
		"data": {"sn":"SN-001","mac":"AA:BB","x":1.5,"y":-2.0,"yaw":0.7,"timestamp":1716200000,"notify_timestamp":1716200000123}
	}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.RobotPose(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	data := resp["data"].(map[string]interface{})
	assert.Equal(t, "received", data["status"])
	assert.Equal(t, "SN-001", data["sn"])
}

func TestCallbackRobotPose_UnsupportedType(t *testing.T) {
	h := NewCallbackHandler(zerolog.Nop())

	body := []byte(`{"callback_type":"notifyRobotPower","data":{"sn":"SN-001"}}`)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")

	h.RobotPose(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "CB_001")
}

// --- Health & Swagger ---

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Ping(ctx context.Context) error { return s.err }
func (s stubChecker) Name() string                   { return s.name }

func TestHealthz(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/healthz", nil)

	Healthz(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "healthy")
}

func TestHealthCheck_AllHealthy(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(stubChecker{name: "pudu-cloud"})(c)

	assert.Equal(t, http.StatusOK, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp["status"])
}

func TestHealthCheck_Degraded(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/health", nil)

	HealthCheck(stubChecker{name: "pudu-cloud", err: assert.AnError})(c)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	var resp map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "degraded", resp["status"])
}

func TestSwaggerUI(t *testing.T) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/swagger", nil)

	SwaggerUI(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, w.Body.String(), "swagger-ui")
	assert.Contains(t, w.Body.String(), "/swagger/spec")
}

func TestSwaggerSpec_Loaded(t *testing.T) {
	SetSwaggerSpec([]byte("openapi: '3.0.0'\ninfo:\n  title: Test"))

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/swagger/spec", nil)

	SwaggerSpec(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "openapi")
}

func TestSwaggerSpec_NotLoaded(t *testing.T) {
	SetSwaggerSpec(nil)

	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(http.MethodGet, "/swagger/spec", nil)

	SwaggerSpec(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
