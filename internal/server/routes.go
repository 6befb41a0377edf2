package server

import (
	"encoding/hex"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/danmuck/vbanctl/internal/config"
	"github.com/danmuck/vbanctl/internal/observability"
	"github.com/danmuck/vbanctl/internal/protocol"
	"github.com/danmuck/vbanctl/internal/protocol/packet"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func (s *Server) registerRoutes() {
	s.router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"uptime":  time.Since(s.appeared).String(),
			"service": s.name,
			"version": "0.1.0",
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	s.router.POST("/v1/headers/decode", func(c *gin.Context) {
		raw, ok := readWireBody(c)
		if !ok {
			return
		}
		head, err := protocol.DecodeHeader(raw)
		if err != nil {
			respondCodecError(c, err)
			return
		}
		c.JSON(http.StatusOK, headerView(head))
	})

	s.router.POST("/v1/packets/decode", func(c *gin.Context) {
		raw, ok := readWireBody(c)
		if !ok {
			return
		}
		p, err := packet.Decode(raw)
		if err != nil {
			respondCodecError(c, err)
			return
		}
		observability.RecordPacketDecoded(p.Header().Protocol.String(), len(p.Payload()))
		c.JSON(http.StatusOK, gin.H{
			"header":       headerView(p.Header()),
			"payload_len":  len(p.Payload()),
			"payload_hex":  hex.EncodeToString(p.Payload()),
			"total_length": len(p.Bytes()),
		})
	})

	s.router.POST("/v1/packets/encode", func(c *gin.Context) {
		var req encodeRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		b, err := config.StreamBuilder(req.Stream)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		factory, err := b.Build()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		payload, err := hex.DecodeString(strings.TrimSpace(req.PayloadHex))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "payload_hex is not valid hex"})
			return
		}
		p, err := factory.CreatePacket()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		if err := p.AttachData(payload); err != nil {
			respondCodecError(c, err)
			return
		}
		observability.RecordHeadEncoded(p.Header().Protocol.String())
		c.JSON(http.StatusOK, gin.H{
			"packet_hex":   hex.EncodeToString(p.Bytes()),
			"frame":        p.Header().Frame,
			"total_length": len(p.Bytes()),
		})
	})
}

type encodeRequest struct {
	Stream     config.StreamConfig `json:"stream"`
	PayloadHex string              `json:"payload_hex"`
}

// readWireBody accepts raw bytes under application/octet-stream and a
// hex dump under anything else.
func readWireBody(c *gin.Context) ([]byte, bool) {
	body, err := io.ReadAll(io.LimitReader(c.Request.Body, packet.MaxSize*2+1))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unreadable body"})
		return nil, false
	}
	if c.ContentType() == "application/octet-stream" {
		return body, true
	}
	raw, err := hex.DecodeString(strings.TrimSpace(string(body)))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "body is not valid hex"})
		return nil, false
	}
	return raw, true
}

func headerView(h protocol.Header) gin.H {
	return gin.H{
		"protocol":    h.Protocol.String(),
		"data_rate":   h.DataRate.String(),
		"rate_value":  h.DataRate.Value(),
		"samples":     h.Samples,
		"channels":    h.Channels,
		"format":      h.Format.String(),
		"codec":       h.Codec.String(),
		"stream_name": h.StreamName,
		"frame":       h.Frame,
	}
}

func respondCodecError(c *gin.Context, err error) {
	observability.RecordDecodeFailure(failureReason(err))
	c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, protocol.ErrBadMagic):
		return "bad_magic"
	case errors.Is(err, protocol.ErrUnsupportedProtocol):
		return "unsupported_protocol"
	case errors.Is(err, protocol.ErrInvalidAttribute):
		return "invalid_attribute"
	case errors.Is(err, protocol.ErrInvalidHeaderLen):
		return "invalid_header_len"
	case errors.Is(err, packet.ErrPayloadTooLarge):
		return "payload_too_large"
	case errors.Is(err, packet.ErrAlreadyHasData):
		return "already_has_data"
	default:
		return "other"
	}
}
