package service

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"pudu-fleet-gateway/internal/core/ports"
)

// Convenience operations, one per upstream endpoint. These are thin:
// they only assemble path and query, then defer to Send.

// HealthCheck calls the cloud health endpoint. Useful to validate
// credentials, region and the signing implementation in one go.
func (s *CloudService) HealthCheck(ctx context.Context, language string) (*ports.CloudResult, error) {
	return s.Send(ctx, http.MethodGet, "/data-open-platform-service/v1/api/healthCheck", nil, nil, language)
}

func (s *CloudService) ListRobotGroups(ctx context.Context, device, shopID, language string) (*ports.CloudResult, error) {
	q := url.Values{}
	if device != "" {
		q.Set("device", device)
	}
	if shopID != "" {
		q.Set("shop_id", shopID)
	}
	return s.Send(ctx, http.MethodGet, "/open-platform-service/v1/robot/group/list", q, nil, language)
}

func (s *CloudService) ListRobots(ctx context.Context, device, groupID, language string) (*ports.CloudResult, error) {
	q := url.Values{}
	q.Set("device", device)
	q.Set("group_id", groupID)
	return s.Send(ctx, http.MethodGet, "/open-platform-service/v1/robot/list_by_device_and_group", q, nil, language)
}

// StoreMapList returns the shop-level map inventory, not robot state.
func (s *CloudService) StoreMapList(ctx context.Context, shopID int64, language string) (*ports.CloudResult, error) {
	q := url.Values{}
	q.Set("shop_id", strconv.FormatInt(shopID, 10))
	return s.Send(ctx, http.MethodGet, "/data-open-platform-service/v1/api/maps", q, nil, language)
}

func (s *CloudService) ListMaps(ctx context.Context, sn, language string) (*ports.CloudResult, error) {
	return s.Send(ctx, http.MethodGet, "/map-service/v1/open/list", snQuery(sn), nil, language)
}

func (s *CloudService) CurrentMap(ctx context.Context, sn string, needElement *bool, language string) (*ports.CloudResult, error) {
	q := snQuery(sn)
	if needElement != nil {
		q.Set("need_element", strconv.FormatBool(*needElement))
	}
	return s.Send(ctx, http.MethodGet, "/map-service/v1/open/current", q, nil, language)
}

// MapDetail returns raw map data without unit conversion.
func (s *CloudService) MapDetail(ctx context.Context, shopID, mapName, language string) (*ports.CloudResult, error) {
	q := url.Values{}
	q.Set("shop_id", shopID)
	q.Set("map_name", mapName)
	return s.Send(ctx, http.MethodGet, "/map-service/v1/open/map", q, nil, language)
}

func (s *CloudService) ListPoints(ctx context.Context, sn, language string) (*ports.CloudResult, error) {
	return s.Send(ctx, http.MethodGet, "/map-service/v1/open/point", snQuery(sn), nil, language)
}

func (s *CloudService) CreateTaskErrand(ctx context.Context, body any, language string) (*ports.CloudResult, error) {
	return s.Send(ctx, http.MethodPost, "/open-platform-service/v1/task_errand", nil, body, language)
}

func (s *CloudService) CreateTransportTask(ctx context.Context, body any, language string) (*ports.CloudResult, error) {
	return s.Send(ctx, http.MethodPost, "/open-platform-service/v1/transport_task", nil, body, language)
}

func (s *CloudService) CustomCall(ctx context.Context, body any, language string) (*ports.CloudResult, error) {
	return s.Send(ctx, http.MethodPost, "/open-platform-service/v1/custom_call", nil, body, language)
}

func (s *CloudService) CustomCallCancel(ctx context.Context, body any, language string) (*ports.CloudResult, error) {
	return s.Send(ctx, http.MethodPost, "/open-platform-service/v1/custom_call/cancel", nil, body, language)
}

func (s *CloudService) CustomCallComplete(ctx context.Context, body any, language string) (*ports.CloudResult, error) {
	return s.Send(ctx, http.MethodPost, "/open-platform-service/v1/custom_call/complete", nil, body, language)
}

func (s *CloudService) ListCalls(ctx context.Context, sn string, limit int, language string) (*ports.CloudResult, error) {
	q := snQuery(sn)
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	return s.Send(ctx, http.MethodGet, "/open-platform-service/v1/call/list", q, nil, language)
}

func (s *CloudService) DeliveryTask(ctx context.Context, body any, language string) (*ports.CloudResult, error) {
	return s.Send(ctx, http.MethodPost, "/open-platform-service/v1/delivery_task", nil, body, language)
}

func (s *CloudService) DeliveryAction(ctx context.Context, body any, language string) (*ports.CloudResult, error) {
	return s.Send(ctx, http.MethodPost, "/open-platform-service/v1/delivery_action", nil, body, language)
}

func (s *CloudService) StatusBySN(ctx context.Context, sn, language string) (*ports.CloudResult, error) {
	return s.Send(ctx, http.MethodGet, "/open-platform-service/v2/status/get_by_sn", snQuery(sn), nil, language)
}

func (s *CloudService) StatusByGroup(ctx context.Context, groupID, language string) (*ports.CloudResult, error) {
	q := url.Values{}
	q.Set("group_id", groupID)
	return s.Send(ctx, http.MethodGet, "/open-platform-service/v1/status/get_by_group_id", q, nil, language)
}

func (s *CloudService) RobotPosition(ctx context.Context, sn, language string) (*ports.CloudResult, error) {
	return s.Send(ctx, http.MethodGet, "/open-platform-service/v1/robot/get_position", snQuery(sn), nil, language)
}

// PositionCommand asks a robot to report its pose periodically; the
// poses arrive on the notifyRobotPose callback route.
func (s *CloudService) PositionCommand(ctx context.Context, body any, language string) (*ports.CloudResult, error) {
	return s.Send(ctx, http.MethodPost, "/open-platform-service/v1/position_command", nil, body, language)
}

func (s *CloudService) TaskState(ctx context.Context, sn, language string) (*ports.CloudResult, error) {
	return s.Send(ctx, http.MethodGet, "/open-platform-service/v1/robot/task/state/get", snQuery(sn), nil, language)
}

func (s *CloudService) RechargeV1(ctx context.Context, sn, language string) (*ports.CloudResult, error) {
	return s.Send(ctx, http.MethodGet, "/open-platform-service/v1/recharge", snQuery(sn), nil, language)
}

// RechargeV2 uses MQTT connectivity upstream and returns more detailed
// errors than v1.
func (s *CloudService) RechargeV2(ctx context.Context, sn, language string) (*ports.CloudResult, error) {
	return s.Send(ctx, http.MethodGet, "/open-platform-service/v2/recharge", snQuery(sn), nil, language)
}

func snQuery(sn string) url.Values {
	q := url.Values{}
	q.Set("sn", sn)
	return q
}
