package domain

// CallbackType identifies the kind of push notification the cloud
// delivers to the configured callback URL.
type CallbackType string

const (
	// CallbackRobotPose is emitted while a robot reports its position,
	// typically after a position_command request.
	CallbackRobotPose CallbackType = "notifyRobotPose"
)

// RobotPose is one position report pushed by the cloud.
type RobotPose struct {
	SN  string  `json:"sn"`
	MAC string  `json:"mac"`
	X   float64 `json:"x"`
	Y   float64 `json:"y"`
	Yaw float64 `json:"yaw"`
	// Timestamp is set cloud-side in seconds; NotifyTimestamp is the
	// robot's own report time in milliseconds.
	Timestamp       int64 `json:"timestamp"`
	NotifyTimestamp int64 `json:"notify_timestamp"`
}
