package bootstrap

import (
	"kairo-server/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	SessionModule,
	MailerModule,
	StorageModule,
	components.RepositoryModule,
	components.UseCaseModule,
	components.HandlerModule,
	WorkerModule,
)
