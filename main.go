package main

import (
	"log/slog"
	"os"

	"github.com/sunthewhat/cert-studio-api/api"
	"github.com/sunthewhat/cert-studio-api/api/model/recordModel"
	"github.com/sunthewhat/cert-studio-api/api/routes"
	"github.com/sunthewhat/cert-studio-api/common"
	"github.com/sunthewhat/cert-studio-api/common/config"
	"github.com/sunthewhat/cert-studio-api/common/gorm"
	"github.com/sunthewhat/cert-studio-api/common/mongo"
	"github.com/sunthewhat/cert-studio-api/common/util"
	"github.com/sunthewhat/cert-studio-api/internal/issuer"
	"github.com/sunthewhat/cert-studio-api/internal/renderer"
	"github.com/sunthewhat/cert-studio-api/internal/storage"
	"github.com/sunthewhat/cert-studio-api/internal/store"
)

func main() {
	config.LoadConfig()

	gorm.InitGorm()
	mongo.InitMongo()
	util.InitDialer()

	minioClient, err := storage.NewMinio(
		*common.Config.MinIoEndpoint,
		*common.Config.MinIoAccessKey,
		*common.Config.MinIoSecretKey,
		*common.Config.BucketCertificate,
	)
	if err != nil {
		slog.Error("Failed to initialize object storage", "error", err)
		os.Exit(1)
	}

	snap, err := store.OpenSnapshot(*common.Config.SnapshotPath)
	if err != nil {
		slog.Error("Failed to open snapshot store", "error", err)
		os.Exit(1)
	}
	defer snap.Close()

	st := store.New(snap)
	if err := st.Restore(); err != nil {
		slog.Error("Failed to restore state from snapshot", "error", err)
		os.Exit(1)
	}

	signingEnabled := common.Config.SigningEnabled != nil && *common.Config.SigningEnabled
	signer, err := renderer.NewSigner(
		signingEnabled,
		deref(common.Config.SigningCertPath),
		deref(common.Config.SigningKeyPath),
	)
	if err != nil {
		slog.Error("Failed to load signing keypair", "error", err)
		os.Exit(1)
	}

	records := recordModel.NewRepository()
	pdfRenderer := renderer.New(signer)
	certIssuer := issuer.New(st, records, pdfRenderer, minioClient, *common.Config.VerifyHost)

	api.InitFiber(routes.Deps{
		Store:   st,
		Issuer:  certIssuer,
		Records: records,
		Storage: minioClient,
	})
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
