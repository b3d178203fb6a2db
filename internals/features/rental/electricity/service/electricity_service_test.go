// file: internals/features/rental/electricity/service/electricity_service_test.go
package service

import (
	"fmt"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	bmodel "rentalku_backend/internals/features/rental/buildings/model"
	emodel "rentalku_backend/internals/features/rental/electricity/model"
	roommodel "rentalku_backend/internals/features/rental/rooms/model"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&bmodel.BuildingModel{},
		&roommodel.RoomModel{},
		&emodel.ElectricityRateModel{},
		&emodel.MeterReadingModel{},
	))
	return db
}

func seedRoom(t *testing.T, db *gorm.DB) *roommodel.RoomModel {
	t.Helper()
	building := bmodel.BuildingModel{BuildingNo: 1, BuildingAddress: "1 Minsheng E Rd"}
	require.NoError(t, db.Create(&building).Error)
	room := roommodel.RoomModel{RoomBuildingID: building.BuildingID, RoomFloorNo: 2, RoomNo: "2A"}
	require.NoError(t, db.Create(&room).Error)
	return &room
}

func d(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func seedRate(t *testing.T, db *gorm.DB, roomID, buildingID *int64, start, end string, perKwh float64) {
	t.Helper()
	rate := emodel.ElectricityRateModel{
		RateRoomID:     roomID,
		RateBuildingID: buildingID,
		RateStartDate:  d(start),
		RateEndDate:    d(end),
		RatePerKwh:     decimal.NewFromFloat(perKwh),
	}
	require.NoError(t, db.Create(&rate).Error)
}

func TestRateForPrefersRoomOverBuilding(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)

	seedRate(t, db, nil, &room.RoomBuildingID, "2024-01-01", "2024-12-31", 5.0)
	seedRate(t, db, &room.RoomID, nil, "2024-01-01", "2024-12-31", 6.5)

	rate, err := RateFor(db, room.RoomID, d("2024-06-01"))
	require.NoError(t, err)
	require.NotNil(t, rate)
	assert.True(t, decimal.NewFromFloat(6.5).Equal(rate.RatePerKwh))
}

func TestRateForFallsBackToBuilding(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)

	seedRate(t, db, nil, &room.RoomBuildingID, "2024-01-01", "2024-12-31", 5.0)

	rate, err := RateFor(db, room.RoomID, d("2024-06-01"))
	require.NoError(t, err)
	require.NotNil(t, rate)
	assert.True(t, decimal.NewFromFloat(5.0).Equal(rate.RatePerKwh))

	// outside every validity window
	rate, err = RateFor(db, room.RoomID, d("2025-06-01"))
	require.NoError(t, err)
	assert.Nil(t, rate)
}

func TestRateForUnknownRoom(t *testing.T) {
	db := openTestDB(t)
	_, err := RateFor(db, 999, d("2024-06-01"))
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)
}

func TestRecordReadingUpsertsOnSameDay(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)

	first, err := RecordReading(db, room.RoomID, d("2024-06-01"), decimal.NewFromInt(100), nil)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(100).Equal(first.ReadingAmount))

	// same (room, date): corrected value replaces, no second row
	second, err := RecordReading(db, room.RoomID, d("2024-06-01"), decimal.NewFromInt(120), nil)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(120).Equal(second.ReadingAmount))

	var count int64
	require.NoError(t, db.Model(&emodel.MeterReadingModel{}).Count(&count).Error)
	assert.EqualValues(t, 1, count)
}

func TestLatestReadingBeforeIsStrict(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)

	_, err := RecordReading(db, room.RoomID, d("2024-05-01"), decimal.NewFromInt(100), nil)
	require.NoError(t, err)
	_, err = RecordReading(db, room.RoomID, d("2024-06-01"), decimal.NewFromInt(150), nil)
	require.NoError(t, err)

	// strictly before: the same-day reading does not count as "previous"
	prev, err := LatestReadingBefore(db, room.RoomID, d("2024-06-01"))
	require.NoError(t, err)
	require.NotNil(t, prev)
	assert.True(t, decimal.NewFromInt(100).Equal(prev.ReadingAmount))

	prev, err = LatestReadingBefore(db, room.RoomID, d("2024-05-01"))
	require.NoError(t, err)
	assert.Nil(t, prev)
}

func TestCalculateBill(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)

	_, err := RecordReading(db, room.RoomID, d("2024-05-15"), decimal.NewFromInt(300), nil)
	require.NoError(t, err)
	seedRate(t, db, &room.RoomID, nil, "2024-01-01", "2024-12-31", 6.0)

	bill, err := CalculateBill(db, room.RoomID, decimal.NewFromInt(450), d("2024-06-15"), nil)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(150).Equal(bill.UsageKwh))
	assert.True(t, decimal.NewFromInt(900).Equal(bill.Amount))
	assert.Equal(t, "2024-05-15", bill.PreviousDate.Format("2006-01-02"))
}

func TestCalculateBillErrors(t *testing.T) {
	db := openTestDB(t)
	room := seedRoom(t, db)

	// no previous reading
	_, err := CalculateBill(db, room.RoomID, decimal.NewFromInt(450), d("2024-06-15"), nil)
	fe, ok := err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)

	_, err = RecordReading(db, room.RoomID, d("2024-05-15"), decimal.NewFromInt(300), nil)
	require.NoError(t, err)

	// meter regression
	_, err = CalculateBill(db, room.RoomID, decimal.NewFromInt(250), d("2024-06-15"), nil)
	fe, ok = err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusBadRequest, fe.Code)

	// no rate row and no default
	_, err = CalculateBill(db, room.RoomID, decimal.NewFromInt(450), d("2024-06-15"), nil)
	fe, ok = err.(*fiber.Error)
	require.True(t, ok)
	assert.Equal(t, fiber.StatusNotFound, fe.Code)

	// caller default rescues it
	fallback := decimal.NewFromFloat(5.0)
	bill, err := CalculateBill(db, room.RoomID, decimal.NewFromInt(450), d("2024-06-15"), &fallback)
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(750).Equal(bill.Amount))
}
