package schedule

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"todo-api/internal/domain/usecase/todo"
	"todo-api/pkg/log"
	"todo-api/pkg/msg"
)

const reportTimeout = 30 * time.Second

type TodoReportScheduler struct {
	cron       *cron.Cron
	useCase    todo.UseCase
	expression string
}

func NewTodoReportScheduler(useCase todo.UseCase, expression string) *TodoReportScheduler {
	return &TodoReportScheduler{cron: cron.New(), useCase: useCase, expression: expression}
}

// InitTodoReportScheduleTasks registers and starts the report job. An empty cron expression disables it.
func (scheduler *TodoReportScheduler) InitTodoReportScheduleTasks() error {
	if scheduler.expression == "" {
		log.Info(msg.GetMessage("todo.report.disabled"))
		return nil
	}

	if _, err := scheduler.cron.AddFunc(scheduler.expression, scheduler.ReportTodos); err != nil {
		return err
	}

	scheduler.cron.Start()
	log.Info(msg.GetMessage("todo.report.scheduled", scheduler.expression))
	return nil
}

// Stop waits for a running report to finish or ctx to expire.
func (scheduler *TodoReportScheduler) Stop(ctx context.Context) error {
	select {
	case <-scheduler.cron.Stop().Done():
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (scheduler *TodoReportScheduler) ReportTodos() {
	log.Debug(msg.GetMessage("todo.report.start"))

	ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
	defer cancel()

	report, err := scheduler.useCase.Report(ctx)
	if err != nil {
		log.Error(msg.GetMessage("todo.report.failed"), zap.Error(err))
		return
	}

	log.Info(msg.GetMessage("todo.report.summary", report.Total, report.Completed, report.Pending),
		zap.Int("total", report.Total),
		zap.Int("completed", report.Completed),
		zap.Int("pending", report.Pending),
	)
}
