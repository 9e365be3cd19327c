package analytics

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vicholitvak/moai-search/internal/models"
)

// Sink is the destination for serialized analytics events.
type Sink interface {
	WriteMessage(topic string, msg []byte) error
	Close() error
}

// NewSink selects the sink from configuration: Kafka when enabled,
// otherwise the configured file format, falling back to the console.
func NewSink(config *models.Config) (Sink, error) {
	if config.KafkaEnabled {
		return NewKafkaSink(config.KafkaBrokerList)
	}
	if config.OutputFile != "" {
		switch config.OutputFormat {
		case "parquet":
			return NewParquetSink(config)
		case "json", "":
			return NewJSONSink(config.OutputFile, config.OutputFolder), nil
		default:
			return nil, fmt.Errorf("unsupported output format: %s", config.OutputFormat)
		}
	}
	return &ConsoleSink{}, nil
}

type ConsoleSink struct{}

func (c *ConsoleSink) WriteMessage(topic string, msg []byte) error {
	_, err := fmt.Fprintf(os.Stdout, "[%s] %s\n", topic, string(msg))
	return err
}

func (c *ConsoleSink) Close() error { return nil }

// JSONSink appends newline-delimited JSON to hour-partitioned files under
// basePath/folder/topic/year=/month=/day=/hour=.
type JSONSink struct {
	basePath string
	folder   string
	files    map[string]*os.File
}

func NewJSONSink(basePath, folder string) *JSONSink {
	return &JSONSink{
		basePath: basePath,
		folder:   folder,
		files:    make(map[string]*os.File),
	}
}

func (j *JSONSink) WriteMessage(topic string, msg []byte) error {
	var event map[string]interface{}
	if err := json.Unmarshal(msg, &event); err != nil {
		return err
	}

	timestamp, ok := event["timestamp"].(float64)
	if !ok {
		return fmt.Errorf("invalid timestamp")
	}

	eventTime := time.Unix(int64(timestamp), 0)
	year, month, day := eventTime.Date()
	hour := eventTime.Hour()

	partitionPath := fmt.Sprintf("year=%d/month=%02d/day=%02d/hour=%02d", year, month, day, hour)
	fullPath := filepath.Join(j.basePath, j.folder, topic, partitionPath)

	if err := os.MkdirAll(fullPath, os.ModePerm); err != nil {
		return err
	}

	fileKey := fmt.Sprintf("%s_%s", topic, partitionPath)
	file, ok := j.files[fileKey]
	if !ok {
		var err error
		file, err = os.Create(filepath.Join(fullPath, "data.json"))
		if err != nil {
			return err
		}
		j.files[fileKey] = file
	}

	if _, err := file.Write(msg); err != nil {
		return err
	}
	_, err := file.WriteString("\n")
	return err
}

func (j *JSONSink) Close() error {
	for _, file := range j.files {
		if err := file.Close(); err != nil {
			return err
		}
	}
	return nil
}
