package dto

// --- Query parameter bindings (GET proxy routes) ---

// SNQuery binds routes that only need a robot serial number.
type SNQuery struct {
	SN string `form:"sn" binding:"required,safe_id"`
}

// RobotGroupsQuery binds GET /fleet/robots/groups. Both filters are
// optional; the cloud scopes the result accordingly.
type RobotGroupsQuery struct {
	Device string `form:"device" binding:"omitempty,safe_id"`
	ShopID string `form:"shop_id" binding:"omitempty,safe_id"`
}

// RobotListQuery binds GET /fleet/robots.
type RobotListQuery struct {
	Device  string `form:"device" binding:"required,safe_id"`
	GroupID string `form:"group_id" binding:"required,safe_id"`
}

// StoreMapListQuery binds GET /fleet/maps/store (shop-level inventory).
type StoreMapListQuery struct {
	ShopID int64 `form:"shop_id" binding:"required"`
}

// CurrentMapQuery binds GET /fleet/maps/current.
type CurrentMapQuery struct {
	SN          string `form:"sn" binding:"required,safe_id"`
	NeedElement *bool  `form:"need_element"`
}

// MapDetailQuery binds GET /fleet/maps/detail. map_name may contain
// non-ASCII characters or '#', so it is deliberately unconstrained.
type MapDetailQuery struct {
	ShopID  string `form:"shop_id" binding:"required,safe_id"`
	MapName string `form:"map_name" binding:"required"`
}

// GroupStatusQuery binds GET /fleet/status/by-group.
type GroupStatusQuery struct {
	GroupID string `form:"group_id" binding:"required,safe_id"`
}

// CallListQuery binds GET /fleet/calls.
type CallListQuery struct {
	SN    string `form:"sn" binding:"required,safe_id"`
	Limit int    `form:"limit,default=10" binding:"omitempty,min=1,max=200"`
}

// --- Mission bodies (POST proxy routes) ---

// TaskErrandRequest dispatches one or more errands to a robot. The
// payload must contain a `tasks` array with task_name, task_desc and
// point_list entries; its exact shape is owned by the cloud, so it is
// passed through untyped.
type TaskErrandRequest struct {
	SN      string         `json:"sn" binding:"required,safe_id"`
	Payload map[string]any `json:"payload" binding:"required"`
}

// TransportTaskRequest creates a transport/delivery task. Payload
// shape depends on the robot model (start_point, destinations, trays).
type TransportTaskRequest struct {
	SN      string         `json:"sn" binding:"required,safe_id"`
	Payload map[string]any `json:"payload" binding:"required"`
}

// CustomCallRequest calls the robot to a single map point, optionally
// showing custom content on the screen. Extra carries any additional
// vendor fields (call_mode, mode_data, shop_id, ...).
type CustomCallRequest struct {
	SN             *string        `json:"sn,omitempty" binding:"omitempty,safe_id"`
	MapName        string         `json:"map_name" binding:"required"`
	Point          string         `json:"point" binding:"required"`
	CallDeviceName string         `json:"call_device_name" binding:"required,safe_id"`
	Extra          map[string]any `json:"extra,omitempty"`
}

// Body flattens the request into the document the cloud expects, with
// Extra fields merged at the top level.
func (r *CustomCallRequest) Body() map[string]any {
	body := map[string]any{
		"map_name":         r.MapName,
		"point":            r.Point,
		"call_device_name": r.CallDeviceName,
	}
	if r.SN != nil {
		body["sn"] = *r.SN
	}
	for k, v := range r.Extra {
		body[k] = v
	}
	return body
}

// CustomCallCancelRequest cancels an ongoing custom call.
type CustomCallCancelRequest struct {
	TaskID         string `json:"task_id" binding:"required,safe_id"`
	CallDeviceName string `json:"call_device_name" binding:"required,safe_id"`
}

// CustomCallCompleteRequest marks a custom call complete and can chain
// another call via next_call_task.
type CustomCallCompleteRequest struct {
	TaskID         string         `json:"task_id" binding:"required,safe_id"`
	CallDeviceName string         `json:"call_device_name" binding:"required,safe_id"`
	NextCallTask   map[string]any `json:"next_call_task,omitempty"`
}

// --- Delivery bodies ---

// DeliveryMapInfo is the optional map context of a destination.
type DeliveryMapInfo struct {
	MapName string `json:"map_name" binding:"required"`
}

// DeliveryDestination is one delivery target within a tray.
type DeliveryDestination struct {
	Destination string           `json:"destination" binding:"required"`
	ID          *string          `json:"id,omitempty"`
	PhoneNum    *string          `json:"phone_num,omitempty"`
	PhoneCode   *string          `json:"phone_code,omitempty"`
	MapInfo     *DeliveryMapInfo `json:"map_info,omitempty"`
}

// DeliveryTray groups destinations for one tray of a multi-tray robot.
type DeliveryTray struct {
	Destinations []DeliveryDestination `json:"destinations" binding:"required,min=1,dive"`
}

// DeliveryTaskPayload are the delivery task parameters.
// Type NEW creates a task; MODIFY forcibly replaces the one being
// executed. DeliverySort AUTO lets the robot sort by nearest; FIXED
// keeps the given order. ExecuteTask false creates the task without
// starting it (start manually or via DeliveryAction START).
type DeliveryTaskPayload struct {
	Type         string         `json:"type" binding:"required,oneof=NEW MODIFY"`
	DeliverySort string         `json:"delivery_sort" binding:"required,oneof=AUTO FIXED"`
	ExecuteTask  *bool          `json:"execute_task" binding:"required"`
	Trays        []DeliveryTray `json:"trays" binding:"required,min=1,dive"`
}

// DeliveryTaskRequest sends a multi-tray delivery task to a robot.
type DeliveryTaskRequest struct {
	SN      string              `json:"sn" binding:"required,safe_id"`
	Payload DeliveryTaskPayload `json:"payload" binding:"required"`
}

// DeliveryActionPayload is a delivery operation command. PAUSE and
// RESUME are only supported by the T300.
type DeliveryActionPayload struct {
	Action string `json:"action" binding:"required,oneof=START COMPLETE CANCEL_ALL_DELIVERY PAUSE RESUME"`
}

// DeliveryActionRequest operates the robot's current delivery task.
type DeliveryActionRequest struct {
	SN      string                `json:"sn" binding:"required,safe_id"`
	Payload DeliveryActionPayload `json:"payload" binding:"required"`
}

// --- Status bodies ---

// PositionCommandPayload asks the robot to publish its position every
// Interval seconds, Times occurrences in total.
type PositionCommandPayload struct {
	Interval int    `json:"interval" binding:"required,min=1"`
	Times    int    `json:"times" binding:"required,min=1,max=1000"`
	Source   string `json:"source,omitempty"`
}

// PositionCommandRequest starts periodic position reporting; the poses
// arrive on the robot-pose callback route.
type PositionCommandRequest struct {
	SN      string                 `json:"sn" binding:"required,safe_id"`
	Payload PositionCommandPayload `json:"payload" binding:"required"`
}

// --- Callbacks ---

// RobotPoseData is the pose payload of a notifyRobotPose callback.
type RobotPoseData struct {
	X               float64 `json:"x"`
	Y               float64 `json:"y"`
	Yaw             float64 `json:"yaw"`
	SN              string  `json:"sn" binding:"required"`
	MAC             string  `json:"mac"`
	Timestamp       int64   `json:"timestamp"`
	NotifyTimestamp int64   `json:"notify_timestamp"`
}

// RobotPoseCallback is the document the cloud POSTs to the configured
// callback URL.
type RobotPoseCallback struct {
	CallbackType string        `json:"callback_type" binding:"required"`
	Data         RobotPoseData `json:"data" binding:"required"`
}

// CallbackAck is the acknowledgement returned to the cloud.
type CallbackAck struct {
	Status string `json:"status"`
	SN     string `json:"sn"`
}
