package services

import (
	"testing"

	"table-tap/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubQRGenerator struct {
	data string
	size int
}

func (g *stubQRGenerator) Generate(data string, size int) ([]byte, error) {
	g.data = data
	g.size = size
	return []byte("png-bytes"), nil
}

func TestTableService_Create(t *testing.T) {
	tables := NewTableService(nil, "http://localhost:5173")

	table, err := tables.Create(models.CreateTableRequest{Number: 1, Capacity: 4})
	require.NoError(t, err)

	assert.NotEmpty(t, table.ID)
	assert.Equal(t, 1, table.Number)
	assert.Equal(t, "square", table.Shape)
	assert.Equal(t, models.TableAvailable, table.Status)
}

func TestTableService_Create_DuplicateNumber(t *testing.T) {
	tables := NewTableService(nil, "http://localhost:5173")

	_, err := tables.Create(models.CreateTableRequest{Number: 1, Capacity: 4})
	require.NoError(t, err)

	_, err = tables.Create(models.CreateTableRequest{Number: 1, Capacity: 2})
	assert.ErrorIs(t, err, ErrTableNumberTaken)
}

func TestTableService_List_SortedByNumber(t *testing.T) {
	tables := NewTableService(nil, "http://localhost:5173")

	_, err := tables.Create(models.CreateTableRequest{Number: 3, Capacity: 4})
	require.NoError(t, err)
	_, err = tables.Create(models.CreateTableRequest{Number: 1, Capacity: 2})
	require.NoError(t, err)

	list := tables.List()
	require.Len(t, list, 2)
	assert.Equal(t, 1, list[0].Number)
	assert.Equal(t, 3, list[1].Number)
}

func TestTableService_Update(t *testing.T) {
	tables := NewTableService(nil, "http://localhost:5173")
	created, err := tables.Create(models.CreateTableRequest{Number: 1, Capacity: 4})
	require.NoError(t, err)

	updated, err := tables.Update(created.ID, models.UpdateTableRequest{Status: "occupied"})
	require.NoError(t, err)
	assert.Equal(t, models.TableOccupied, updated.Status)
}

func TestTableService_Update_NumberCollision(t *testing.T) {
	tables := NewTableService(nil, "http://localhost:5173")
	_, err := tables.Create(models.CreateTableRequest{Number: 1, Capacity: 4})
	require.NoError(t, err)
	second, err := tables.Create(models.CreateTableRequest{Number: 2, Capacity: 4})
	require.NoError(t, err)

	_, err = tables.Update(second.ID, models.UpdateTableRequest{Number: intPtr(1)})
	assert.ErrorIs(t, err, ErrTableNumberTaken)
}

func TestTableService_Delete(t *testing.T) {
	tables := NewTableService(nil, "http://localhost:5173")
	created, err := tables.Create(models.CreateTableRequest{Number: 1, Capacity: 4})
	require.NoError(t, err)

	require.NoError(t, tables.Delete(created.ID))
	assert.ErrorIs(t, tables.Delete(created.ID), ErrTableNotFound)
}

func TestTableService_QRCode_EncodesMenuURL(t *testing.T) {
	qr := &stubQRGenerator{}
	tables := NewTableService(qr, "https://tabletap.example.com")
	created, err := tables.Create(models.CreateTableRequest{Number: 7, Capacity: 4})
	require.NoError(t, err)

	png, err := tables.QRCode(created.ID, 512)
	require.NoError(t, err)

	assert.Equal(t, []byte("png-bytes"), png)
	assert.Equal(t, "https://tabletap.example.com/menu?table=7", qr.data)
	assert.Equal(t, 512, qr.size)
}

func TestTableService_QRCode_ClampsSize(t *testing.T) {
	qr := &stubQRGenerator{}
	tables := NewTableService(qr, "http://localhost:5173")
	created, err := tables.Create(models.CreateTableRequest{Number: 1, Capacity: 4})
	require.NoError(t, err)

	_, err = tables.QRCode(created.ID, 0)
	require.NoError(t, err)
	assert.Equal(t, 256, qr.size)

	_, err = tables.QRCode(created.ID, 9999)
	require.NoError(t, err)
	assert.Equal(t, 1024, qr.size)
}

func TestTableService_QRCode_RealEncoderProducesPNG(t *testing.T) {
	tables := NewTableService(nil, "http://localhost:5173")
	created, err := tables.Create(models.CreateTableRequest{Number: 1, Capacity: 4})
	require.NoError(t, err)

	png, err := tables.QRCode(created.ID, 256)
	require.NoError(t, err)
	require.Greater(t, len(png), 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}

func TestTableService_QRCode_NotFound(t *testing.T) {
	tables := NewTableService(nil, "http://localhost:5173")

	_, err := tables.QRCode("nonexistent", 256)
	assert.ErrorIs(t, err, ErrTableNotFound)
}
