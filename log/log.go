// Copyright (C) 2019 gyee authors
//
// This file is part of the gyee library.
//
// The gyee library is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// The gyee library is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with the gyee library.  If not, see <http://www.gnu.org/licenses/>.

package log

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/yeeco/nbre/utils/logging"
)

//
// logging API with key / value context
//
//   log.Info("Put block", "height", 12, "txs", 3)
//

func Trace(msg string, ctx ...interface{}) {
	entry(ctx).Trace(msg)
}

func Debug(msg string, ctx ...interface{}) {
	entry(ctx).Debug(msg)
}

func Info(msg string, ctx ...interface{}) {
	entry(ctx).Info(msg)
}

func Warn(msg string, ctx ...interface{}) {
	entry(ctx).Warn(msg)
}

func Error(msg string, ctx ...interface{}) {
	entry(ctx).Error(msg)
}

// Crit logs and exits the process.
func Crit(msg string, ctx ...interface{}) {
	entry(ctx).Fatal(msg)
}

//
// logging API with printf format
//

func Debugf(format string, args ...interface{}) {
	logging.Logger.Debugf(format, args...)
}

func Infof(format string, args ...interface{}) {
	logging.Logger.Infof(format, args...)
}

func Warnf(format string, args ...interface{}) {
	logging.Logger.Warnf(format, args...)
}

func Errorf(format string, args ...interface{}) {
	logging.Logger.Errorf(format, args...)
}

// entry turns alternating keys and values into logrus fields. A trailing
// value without key is logged under "ctx".
func entry(ctx []interface{}) *logrus.Entry {
	fields := make(logrus.Fields, (len(ctx)+1)/2)
	for i := 0; i < len(ctx); i += 2 {
		if i+1 == len(ctx) {
			fields["ctx"] = ctx[i]
			break
		}
		fields[fmt.Sprint(ctx[i])] = ctx[i+1]
	}
	return logging.Logger.WithFields(fields)
}
