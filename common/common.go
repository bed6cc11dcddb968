package common

import (
	"go.mongodb.org/mongo-driver/mongo"
	"gopkg.in/gomail.v2"
	"gorm.io/gorm"

	"github.com/sunthewhat/cert-studio-api/type/shared"
)

var Config *shared.Config
var Gorm *gorm.DB
var Mongo *mongo.Database
var Dialer *gomail.Dialer
