package logger

import (
	"context"
	"fmt"
	"log"
	"os"
	appConfig "riftstats/pkg/config"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/aws/aws-sdk-go-v2/service/s3/types"
)

// Interval between log uploads to the bucket.
const ShipInterval = 30 * time.Minute

// Logger that we will use to save our logs.
type Logger struct {
	mu       sync.Mutex
	logFile  *os.File
	filePath string
}

// Create the log instance with a temporary file.
func CreateLogger() (*Logger, error) {
	f, err := os.CreateTemp("", "log-*.log")
	if err != nil {
		return nil, err
	}

	return &Logger{
		logFile:  f,
		filePath: f.Name(),
	}, nil
}

// Log a simple info.
func (l *Logger) Infof(format string, args ...interface{}) {
	l.write("[INFO]", format, args...)
}

// Log a error.
func (l *Logger) Errorf(format string, args ...interface{}) {
	l.write("[ERROR]", format, args...)
}

// Write something to the logger.
// A nil logger is a no-op, so callers don't need to guard every log line.
func (l *Logger) write(infoType string, format string, args ...interface{}) {
	if l == nil {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("2006-01-02 15:04:05")
	line := fmt.Sprintf("%-8s %s %s\n", infoType, timestamp, fmt.Sprintf(format, args...))

	l.logFile.WriteString(line)
}

// StartShippingWorker uploads the log file to the bucket on a fixed interval
// until the returned stop function is called. Without a configured log
// bucket the worker is a no-op and the logs stay on the local temp file.
func (l *Logger) StartShippingWorker(interval time.Duration) func() {
	if appConfig.Bucket.LogBucket == "" {
		return func() {}
	}

	stop := make(chan struct{})
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				objectKey := fmt.Sprintf("api/%s.log", time.Now().Format("2006-01-02-15-04"))
				if err := l.UploadToS3Bucket(objectKey); err != nil {
					log.Printf("Couldn't send the log to s3: %v", err)

					// Clean the file in the case it was a S3 error and not a file error.
					l.CleanFile()
				} else {
					log.Printf("Successfully sent log to s3 with key: %s", objectKey)
				}
			case <-stop:
				return
			}
		}
	}()

	return func() { close(stop) }
}

// Clean the file contents.
func (l *Logger) CleanFile() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.logFile.Truncate(0)

	l.logFile.Seek(0, 0)
}

// Upload the log to a s3 bucket.
func (l *Logger) UploadToS3Bucket(objectKey string) error {
	if _, err := l.logFile.Seek(0, 0); err != nil {
		return fmt.Errorf("failed to rewind file: %v", err)
	}

	// Get the config.
	cfg := aws.Config{
		Region: appConfig.Bucket.Region,
		Credentials: aws.NewCredentialsCache(
			credentials.NewStaticCredentialsProvider(
				appConfig.Bucket.AccessKey,
				appConfig.Bucket.AccessSecret,
				"",
			),
		),
	}

	// Create the client.
	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		o.BaseEndpoint = aws.String(appConfig.Bucket.Endpoint)
	})

	// Run the put.
	_, err := s3Client.PutObject(context.TODO(), &s3.PutObjectInput{
		Bucket: aws.String(appConfig.Bucket.LogBucket),
		Key:    aws.String(objectKey),
		Body:   l.logFile,
		ACL:    types.ObjectCannedACLPrivate,
	})
	if err != nil {
		return fmt.Errorf("failed to upload %s to S3 bucket: %v", objectKey, err)
	}

	// Clean the file after sending.
	l.CleanFile()

	return nil
}
