// Package sheet собирает итоговую книгу .xlsx из распознанных таблиц.
package sheet
