package simulator

import (
	"encoding/json"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"restosim/internal/models"

	"github.com/IBM/sarama"
	"github.com/lucsky/cuid"
)

const daySummaryTopic = "day_summaries"

type OutputDestination interface {
	WriteMessage(topic string, msg []byte) error
}

type ConsoleOutput struct{}

type KafkaOutput struct {
	producer sarama.SyncProducer
}

type FileOutput struct {
	files    map[string]*os.File
	basePath string // Base directory for output files
}

// NewFileOutput creates a new FileOutput instance with initialized values.
func NewFileOutput(basePath string) *FileOutput {
	return &FileOutput{
		files:    make(map[string]*os.File),
		basePath: basePath,
	}
}

func (f *FileOutput) WriteMessage(topic string, msg []byte) error {
	// Check if the file already exists in the map
	if _, ok := f.files[topic]; !ok {
		// If not, create the file
		filename := fmt.Sprintf("%s/%s.txt", f.basePath, topic)
		file, err := os.Create(filename)
		if err != nil {
			return fmt.Errorf("failed to create file for topic %s: %w", topic, err)
		}
		f.files[topic] = file
	}

	if _, err := f.files[topic].Write(append(msg, '\n')); err != nil {
		return fmt.Errorf("failed to write message to topic %s: %w", topic, err)
	}

	return nil
}

func (f *FileOutput) Close() error {
	var firstErr error
	for _, file := range f.files {
		if err := file.Close(); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

func (k *KafkaOutput) WriteMessage(topic string, msg []byte) error {
	if k.producer == nil {
		return fmt.Errorf("Kafka producer is closed")
	}
	_, _, err := k.producer.SendMessage(&sarama.ProducerMessage{
		Topic: topic,
		Value: sarama.ByteEncoder(msg),
	})
	return err
}

func (k *KafkaOutput) Close() error {
	return k.producer.Close()
}

func (c *ConsoleOutput) WriteMessage(topic string, msg []byte) error {
	output := fmt.Sprintf("[%s] %s\n", topic, string(msg))

	if _, err := os.Stdout.Write([]byte(output)); err != nil {
		return fmt.Errorf("failed to write to stdout: %w", err)
	}

	_ = os.Stdout.Sync()

	return nil
}

func createKafkaProducer(brokerList []string) (sarama.SyncProducer, error) {
	config := sarama.NewConfig()
	config.Producer.RequiredAcks = sarama.WaitForAll
	config.Producer.Retry.Max = 5
	config.Producer.Retry.Backoff = 100 * time.Millisecond
	config.Producer.Return.Successes = true
	config.Net.DialTimeout = 30 * time.Second
	config.Net.ReadTimeout = 30 * time.Second
	config.Net.WriteTimeout = 30 * time.Second

	producer, err := sarama.NewSyncProducer(brokerList, config)
	if err != nil {
		return nil, fmt.Errorf("failed to create Kafka producer: %w", err)
	}
	return producer, nil
}

func (s *Simulator) determineOutputDestination() OutputDestination {
	if s.Config.KafkaEnabled {
		brokerList := strings.Split(s.Config.KafkaBrokerList, ",")
		producer, err := createKafkaProducer(brokerList)
		if err != nil {
			log.Fatalf("Failed to create Kafka producer: %s", err)
		}
		return &KafkaOutput{producer: producer}
	} else if s.Config.OutputFile != "" {
		return NewFileOutput(s.Config.OutputFile)
	}
	return &ConsoleOutput{}
}

func closeOutput(output OutputDestination) {
	if closer, ok := output.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			log.Printf("Error closing output: %v", err)
		}
	}
}

// dayEvent wraps a summary for emission with an id and timestamp.
type dayEvent struct {
	EventID   string            `json:"event_id"`
	EventType string            `json:"eventType"`
	Timestamp int64             `json:"timestamp"`
	Data      models.DaySummary `json:"data"`
}

func serializeSummary(summary models.DaySummary) ([]byte, error) {
	event := dayEvent{
		EventID:   cuid.New(),
		EventType: "day_completed",
		Timestamp: time.Now().Unix(),
		Data:      summary,
	}
	return json.Marshal(event)
}
