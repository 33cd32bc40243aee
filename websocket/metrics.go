// Package websocket - websocket/metrics.go
// file: websocket/metrics.go

package websocket

import (
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"

	"courtside/logger"
)

// Namespace for all Courtside metrics
var metricsNamespace = "Courtside"

var cwClient *cloudwatch.CloudWatch

// EnableMetrics creates the CloudWatch client. Until called, every
// Publish* function is a no-op, so local runs need no AWS credentials.
func EnableMetrics() {
	cwClient = cloudwatch.New(session.Must(session.NewSession()))
	logger.Info.Println("[EnableMetrics] CloudWatch metrics enabled")
}

// PublishSpectatorConnections pushes the current WebSocket connection count
func PublishSpectatorConnections(count int) {
	putMetric("SpectatorConnections", float64(count), "Count")
}

// PublishBroadcastBacklog pushes a gauge for broadcast queue depth
func PublishBroadcastBacklog(depth int) {
	putMetric("BroadcastQueueDepth", float64(depth), "Count")
}

// PublishCommandLatency pushes scoring-command handling time (in ms)
func PublishCommandLatency(latencyMs float64) {
	putMetric("CommandLatencyMs", latencyMs, "Milliseconds")
}

// -----------------------------------------------------------
// internal helper function to package up CloudWatch calls
// -----------------------------------------------------------
func putMetric(metricName string, value float64, unit string) {
	if cwClient == nil {
		return
	}
	_, err := cwClient.PutMetricData(&cloudwatch.PutMetricDataInput{
		Namespace: aws.String(metricsNamespace),
		MetricData: []*cloudwatch.MetricDatum{
			{
				MetricName: aws.String(metricName),
				Timestamp:  aws.Time(time.Now()),
				Value:      aws.Float64(value),
				Unit:       aws.String(unit),
			},
		},
	})

	if err != nil {
		logger.Error.Printf("[putMetric] CloudWatch metric failed (%s): %v", metricName, err)
	}
}
