// Package streaming содержит компоненты для потокового чтения аудио по сети и с диска
package streaming

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultBufferSize - размер буфера чтения по умолчанию
const DefaultBufferSize = 256 * 1024

// Reader представляет буферизованный поток для чтения данных порциями
type Reader struct {
	reader *bufio.Reader
	body   io.Closer
}

// Open открывает поток по адресу: http(s) читается по сети, остальное - как локальный файл
func Open(ctx context.Context, uri string, bufferSize int) (*Reader, error) {
	if strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://") {
		return NewReader(ctx, uri, bufferSize)
	}

	file, err := os.Open(strings.TrimPrefix(uri, "file://"))
	if err != nil {
		return nil, fmt.Errorf("ошибка открытия файла: %w", err)
	}
	return &Reader{
		reader: bufio.NewReaderSize(file, bufferSize),
		body:   file,
	}, nil
}

// NewReader создает новый потоковый ридер для HTTP адреса
func NewReader(ctx context.Context, url string, bufferSize int) (*Reader, error) {
	// HTTP клиент без общего таймаута: поток читается долго
	client := &http.Client{
		Transport: &http.Transport{
			DialContext: (&net.Dialer{
				Timeout:   30 * time.Second,
				KeepAlive: 30 * time.Second,
			}).DialContext,
			TLSHandshakeTimeout:   10 * time.Second,
			ResponseHeaderTimeout: 30 * time.Second,
			IdleConnTimeout:       300 * time.Second,
			MaxIdleConns:          10,
			MaxIdleConnsPerHost:   2,
			ExpectContinueTimeout: 1 * time.Second,
		},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("Accept-Encoding", "identity") // без сжатия для потока
	req.Header.Set("Range", "bytes=0-")
	req.Header.Set("User-Agent", "go-comp/1.0")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusPartialContent {
		resp.Body.Close()
		return nil, fmt.Errorf("ошибка HTTP: %s", resp.Status)
	}

	return &Reader{
		reader: bufio.NewReaderSize(resp.Body, bufferSize),
		body:   resp.Body,
	}, nil
}

// Read реализует интерфейс io.Reader для потокового чтения
func (sr *Reader) Read(p []byte) (n int, err error) {
	return sr.reader.Read(p)
}

// Close закрывает соединение или файл
func (sr *Reader) Close() error {
	return sr.body.Close()
}
