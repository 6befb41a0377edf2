package observability

import (
	"testing"
	"time"

	"github.com/danmuck/vbanctl/internal/testutil/testlog"
)

func TestRegisterMetricsAndRecordersAreSafe(t *testing.T) {
	testlog.Start(t)

	RegisterMetrics()
	RegisterMetrics()

	RecordHTTPRequest("vbanctl", "POST", "/v1/packets/decode", 200, 3*time.Millisecond)
	RecordHeadEncoded("audio")
	RecordPacketDecoded("audio", 1024)
	RecordDecodeFailure("bad_magic")
}
