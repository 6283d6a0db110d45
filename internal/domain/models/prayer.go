package models

import "time"

// PrayerTimes holds one day of timings as served to the mobile app.
// Times are "HH:MM" strings in the location's local timezone, as the
// upstream Aladhan API reports them.
type PrayerTimes struct {
	Fajr    string `json:"fajr"`    // Imsak
	Sunrise string `json:"sunrise"` // Gunes
	Dhuhr   string `json:"dhuhr"`   // Ogle
	Asr     string `json:"asr"`     // Ikindi
	Maghrib string `json:"maghrib"` // Aksam
	Isha    string `json:"isha"`    // Yatsi

	Date        string `json:"date"`
	HijriDate   string `json:"hijri_date,omitempty"`
	HijriDateAr string `json:"hijri_date_ar,omitempty"`
	Timezone    string `json:"timezone"`
	Method      string `json:"method"`
}

// MonthlyPrayerDay is one row of the monthly calendar.
type MonthlyPrayerDay struct {
	Date      string `json:"date"`
	Gregorian string `json:"gregorian"`
	Hijri     string `json:"hijri"`

	Fajr    string `json:"fajr"`
	Sunrise string `json:"sunrise"`
	Dhuhr   string `json:"dhuhr"`
	Asr     string `json:"asr"`
	Maghrib string `json:"maghrib"`
	Isha    string `json:"isha"`
}

// NextPrayer is the countdown target derived from a day's timings.
type NextPrayer struct {
	Name      string        `json:"name"`
	At        time.Time     `json:"at"`
	Remaining time.Duration `json:"remaining"`
}
