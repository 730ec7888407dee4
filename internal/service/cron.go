package service

import (
	"context"
	"log"
	"time"
)

// CronService runs periodic background maintenance.
type CronService struct {
	ledger    *LedgerService
	retention time.Duration
	logger    *log.Logger
	interval  time.Duration
	stopCh    chan struct{}
}

// NewCronService creates a CronService that periodically removes
// transferred anonymous-usage rows past the retention window.
func NewCronService(ledger *LedgerService, retention time.Duration, logger *log.Logger, interval time.Duration) *CronService {
	return &CronService{
		ledger:    ledger,
		retention: retention,
		logger:    logger,
		interval:  interval,
		stopCh:    make(chan struct{}),
	}
}

// Start begins the periodic cleanup loop in a goroutine.
func (c *CronService) Start() {
	go c.run()
	c.logger.Printf("cron: started (interval=%s retention=%s)", c.interval, c.retention)
}

// Stop signals the cron loop to stop.
func (c *CronService) Stop() {
	close(c.stopCh)
	c.logger.Println("cron: stopped")
}

func (c *CronService) run() {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			if n, err := c.ledger.CleanupTransferredAnonymousUsage(ctx, c.retention); err != nil {
				c.logger.Printf("cron: cleanup anonymous usage: %v", err)
			} else if n > 0 {
				c.logger.Printf("cron: cleaned %d anonymous rows", n)
			}
			cancel()
		}
	}
}
