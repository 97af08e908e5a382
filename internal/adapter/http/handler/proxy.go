package handler

import (
	"errors"

	"pudu-fleet-gateway/internal/core/ports"
	"pudu-fleet-gateway/internal/service"
	"pudu-fleet-gateway/pkg/apperror"
	"pudu-fleet-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// HeaderLanguage is forwarded to the cloud unsigned; it selects the
// language of vendor messages.
const HeaderLanguage = "Language"

// language extracts the optional Language header to forward upstream.
func language(c *gin.Context) string {
	return c.GetHeader(HeaderLanguage)
}

// relay writes the cloud payload or the translated error.
func relay(c *gin.Context, res *ports.CloudResult, err error) {
	if err != nil {
		response.Error(c, translateCloudError(err))
		return
	}
	response.OK(c, res.Payload())
}

// translateCloudError maps transport-level failures onto the API error
// taxonomy. Upstream rejections become 502 with the vendor body kept;
// network failures become 504.
func translateCloudError(err error) error {
	var upstream *service.UpstreamError
	if errors.As(err, &upstream) {
		return apperror.ErrUpstream(upstream.Status, upstream.Body, err)
	}
	var network *service.NetworkError
	if errors.As(err, &network) {
		return apperror.ErrCloudUnreachable(err)
	}
	return err
}
