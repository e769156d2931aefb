package initializers

import (
	"context"

	"talentdesk-backend/config"
	"talentdesk-backend/fiberlog"
	analyticshandler "talentdesk-backend/lib/analytics"
	authhandler "talentdesk-backend/lib/auth"
	candidatehandler "talentdesk-backend/lib/candidate"
	employeehandler "talentdesk-backend/lib/employee"
	xlsexport "talentdesk-backend/lib/export/xls"
	filestorage "talentdesk-backend/lib/file-storage"
	jobhandler "talentdesk-backend/lib/job"
	requisitionhandler "talentdesk-backend/lib/requisition"
)

var LoggerConfig *fiberlog.Config

// InitAllServices wires handlers in dependency order: shared services first,
// then handlers whose Instance others read at construction time.
func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3()
	InitSmtp()
	xlsexport.NewHandler()
	filestorage.NewHandler()
	authhandler.NewHandler()
	jobhandler.NewHandler()
	requisitionhandler.NewHandler()
	candidatehandler.NewHandler()
	employeehandler.NewHandler()
	analyticshandler.NewHandler()
}
