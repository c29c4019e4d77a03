package initializers

import (
	"context"

	"recruit-flow-backend/config"
	"recruit-flow-backend/fiberlog"
	activityhandler "recruit-flow-backend/lib/activity"
	candidatehandler "recruit-flow-backend/lib/candidate"
	candidatehistoryhandler "recruit-flow-backend/lib/candidate-history"
	examhandler "recruit-flow-backend/lib/exam"
	aicheckhandler "recruit-flow-backend/lib/exam/ai-check"
	autocheckworker "recruit-flow-backend/lib/exam/auto-check-worker"
	xlsexport "recruit-flow-backend/lib/export/xls"
	filestorage "recruit-flow-backend/lib/file-storage"
	pipelinehandler "recruit-flow-backend/lib/pipeline"
	spaceauthhandler "recruit-flow-backend/lib/space/auth"
	pushhandler "recruit-flow-backend/lib/space/push/handler"
	stagehandler "recruit-flow-backend/lib/stage"
	vacancyhandler "recruit-flow-backend/lib/vacancy"
	connectionhub "recruit-flow-backend/lib/ws/hub/connection-hub"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	connectionhub.Init()
	filestorage.NewHandler()
	pushhandler.NewHandler()
	spaceauthhandler.NewHandler()
	candidatehistoryhandler.NewHandler()
	stagehandler.NewHandler()
	vacancyhandler.NewHandler()
	candidatehandler.NewHandler()
	activityhandler.NewHandler()
	examhandler.NewHandler()
	aicheckhandler.NewHandler()
	pipelinehandler.NewHandler()
	xlsexport.NewHandler()
	go initWorkers(ctx)
}

func initWorkers(ctx context.Context) {
	// Задача автоматической проверки отправленных попыток теста
	autocheckworker.StartWorker(ctx)
}
