package main

import (
	"fmt"
	"os"
	"time"

	"github.com/alapierre/go-scanx/png"
	"github.com/alapierre/go-scanx/scanx/reader"
	"github.com/alapierre/go-scanx/scanx/token"
	"github.com/alapierre/go-scanx/scanx/util"
	"github.com/sirupsen/logrus"
	"github.com/skip2/go-qrcode"
)

func main() {

	util.ConfigureLogging()

	key := util.GetEnvOrFailed("SCANX_KEY")
	out := util.GetEnvOrDefault("SCANX_QR_OUT", "")

	accessToken, err := token.Issue(key, time.Now(), nil)
	if err != nil {
		logrus.WithError(err).Fatal("can't issue access token")
	}

	st := token.ValidateAccessToken(accessToken)
	logrus.WithField("status", int(st)).Info(st.Message())

	fmt.Println(accessToken)
	fmt.Println(string(reader.EncodeResults([]reader.Result{{
		Message: st.Message(),
		Status:  st,
	}})))

	if out == "" {
		return
	}

	data, err := png.Qr(accessToken, qrcode.Medium, 300)
	if err != nil {
		logrus.WithError(err).Fatal("can't render access token QR code")
	}
	if err := os.WriteFile(out, data, 0644); err != nil {
		logrus.WithError(err).Fatal("can't write QR code")
	}
	logrus.Infof("access token QR code written to %s", out)
}
