package service

import (
	"context"

	"pudu-fleet-gateway/internal/core/ports"
)

// CloudHealthChecker implements ports.HealthChecker by calling the
// cloud health endpoint with a signed request, which exercises
// credentials, region and the signature in one round trip.
type CloudHealthChecker struct {
	cloud ports.CloudService
}

func NewCloudHealthChecker(cloud ports.CloudService) *CloudHealthChecker {
	return &CloudHealthChecker{cloud: cloud}
}

func (h *CloudHealthChecker) Ping(ctx context.Context) error {
	_, err := h.cloud.HealthCheck(ctx, "")
	return err
}

func (h *CloudHealthChecker) Name() string {
	return "pudu-cloud"
}
