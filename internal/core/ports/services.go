package ports

import (
	"context"
	"net/url"
)

// Signature holds the headers produced for one signed request.
type Signature struct {
	Date          string // x-date header value, RFC-1123 with GMT
	ContentDigest string // base64 of the ASCII hex MD5 of the body, "" for GET
	Authorization string // full hmac Authorization header value
}

// CloudSigner computes the Pudu Open Platform HMAC-SHA1 signature for
// an outbound request. signingPath is the environment-normalized path
// plus the canonical query, not the path used on the wire.
type CloudSigner interface {
	Sign(method, signingPath string, body []byte) Signature
}

// CloudResult is the decoded reply from the cloud. Data holds the
// parsed JSON document; when the 2xx body is not valid JSON, Raw keeps
// the text instead and Data is nil.
type CloudResult struct {
	StatusCode int
	Data       any
	Raw        string
}

// Payload returns the value relayed to API clients: the decoded JSON
// document, or a raw-text fallback carrying the upstream status.
func (r *CloudResult) Payload() any {
	if r.Raw != "" {
		return map[string]any{"raw": r.Raw, "status_code": r.StatusCode}
	}
	return r.Data
}

// CloudService is the signed transport to the Pudu cloud plus one
// convenience operation per upstream endpoint. Every operation accepts
// an optional language tag forwarded as the (unsigned) Language header;
// pass "" to omit it. POST bodies are serialized once as compact JSON
// and the same bytes feed both the content digest and the wire.
type CloudService interface {
	// Send is the generic signed request all convenience operations go
	// through. query may be nil; body is ignored for GET.
	Send(ctx context.Context, method, path string, query url.Values, body any, language string) (*CloudResult, error)

	// Health
	HealthCheck(ctx context.Context, language string) (*CloudResult, error)

	// Robots
	ListRobotGroups(ctx context.Context, device, shopID, language string) (*CloudResult, error)
	ListRobots(ctx context.Context, device, groupID, language string) (*CloudResult, error)

	// Maps
	StoreMapList(ctx context.Context, shopID int64, language string) (*CloudResult, error)
	ListMaps(ctx context.Context, sn, language string) (*CloudResult, error)
	CurrentMap(ctx context.Context, sn string, needElement *bool, language string) (*CloudResult, error)
	MapDetail(ctx context.Context, shopID, mapName, language string) (*CloudResult, error)
	ListPoints(ctx context.Context, sn, language string) (*CloudResult, error)

	// Missions
	CreateTaskErrand(ctx context.Context, body any, language string) (*CloudResult, error)
	CreateTransportTask(ctx context.Context, body any, language string) (*CloudResult, error)
	CustomCall(ctx context.Context, body any, language string) (*CloudResult, error)
	CustomCallCancel(ctx context.Context, body any, language string) (*CloudResult, error)
	CustomCallComplete(ctx context.Context, body any, language string) (*CloudResult, error)
	ListCalls(ctx context.Context, sn string, limit int, language string) (*CloudResult, error)

	// Delivery
	DeliveryTask(ctx context.Context, body any, language string) (*CloudResult, error)
	DeliveryAction(ctx context.Context, body any, language string) (*CloudResult, error)

	// Status & position
	StatusBySN(ctx context.Context, sn, language string) (*CloudResult, error)
	StatusByGroup(ctx context.Context, groupID, language string) (*CloudResult, error)
	RobotPosition(ctx context.Context, sn, language string) (*CloudResult, error)
	PositionCommand(ctx context.Context, body any, language string) (*CloudResult, error)
	TaskState(ctx context.Context, sn, language string) (*CloudResult, error)

	// Recharge
	RechargeV1(ctx context.Context, sn, language string) (*CloudResult, error)
	RechargeV2(ctx context.Context, sn, language string) (*CloudResult, error)

	// Close releases pooled connections. Idempotent.
	Close() error
}
