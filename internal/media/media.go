package media

import "github.com/sirupsen/logrus"

type MediaLogHook struct{}

func (h *MediaLogHook) Fire(entry *logrus.Entry) error {
	entry.Message = "Media: " + entry.Message
	return nil
}

func (h *MediaLogHook) Levels() []logrus.Level {
	return logrus.AllLevels
}
