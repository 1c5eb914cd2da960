package messages

import (
	"bytes"
	"fmt"
	"io"

	snapshotfb "github.com/DylM0nster22/Tetris/flatbuffers/snapshot"
	gametypes "github.com/DylM0nster22/Tetris/pkg/game/types"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/klauspost/compress/zstd"
)

// SerializeSnapshot encodes a snapshot as a zstd compressed flatbuffer.
func SerializeSnapshot(snapshot *gametypes.Snapshot) ([]byte, error) {
	b, err := SerializeSnapshotFlatbuffer(snapshot)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize snapshot: %v", err)
	}

	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress snapshot: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}

	return compressed.Bytes(), nil
}

// DeserializeSnapshot reverses SerializeSnapshot.
func DeserializeSnapshot(data []byte) (*gametypes.Snapshot, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()

	b, err := io.ReadAll(compReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read decompressed snapshot: %v", err)
	}

	snapshot, err := DeserializeSnapshotFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize snapshot: %v", err)
	}

	return snapshot, nil
}

func SerializeSnapshotFlatbuffer(snapshot *gametypes.Snapshot) ([]byte, error) {
	rows := len(snapshot.Board)
	cols := 0
	if rows > 0 {
		cols = len(snapshot.Board[0])
	}
	if rows > 255 || cols > 255 {
		return nil, fmt.Errorf("board of %dx%d does not fit the snapshot format", rows, cols)
	}

	builder := flatbuffers.NewBuilder(0)

	cells := make([]byte, 0, rows*cols)
	for y, row := range snapshot.Board {
		if len(row) != cols {
			return nil, fmt.Errorf("row %d has %d columns, expected %d", y, len(row), cols)
		}
		cells = append(cells, row...)
	}
	cellsOffset := builder.CreateByteVector(cells)

	active := serializePieceFlatbuffer(builder, snapshot.Active)
	next := serializePieceFlatbuffer(builder, snapshot.Next)
	hold := serializePieceFlatbuffer(builder, snapshot.Hold)
	state := builder.CreateString(snapshot.State)
	mode := builder.CreateString(snapshot.Mode)

	snapshotfb.SnapshotStart(builder)
	snapshotfb.SnapshotAddRows(builder, byte(rows))
	snapshotfb.SnapshotAddCols(builder, byte(cols))
	snapshotfb.SnapshotAddCells(builder, cellsOffset)
	if snapshot.Active != nil {
		snapshotfb.SnapshotAddActive(builder, active)
	}
	if snapshot.Next != nil {
		snapshotfb.SnapshotAddNext(builder, next)
	}
	if snapshot.Hold != nil {
		snapshotfb.SnapshotAddHold(builder, hold)
	}
	snapshotfb.SnapshotAddScore(builder, int32(snapshot.Score))
	snapshotfb.SnapshotAddHighScore(builder, int32(snapshot.HighScore))
	snapshotfb.SnapshotAddLevel(builder, int32(snapshot.Level))
	snapshotfb.SnapshotAddCombo(builder, int32(snapshot.Combo))
	snapshotfb.SnapshotAddLines(builder, int32(snapshot.Lines))
	snapshotfb.SnapshotAddState(builder, state)
	snapshotfb.SnapshotAddMode(builder, mode)
	snapshotOffset := snapshotfb.SnapshotEnd(builder)
	builder.Finish(snapshotOffset)

	return builder.FinishedBytes(), nil
}

func serializePieceFlatbuffer(builder *flatbuffers.Builder, piece *gametypes.Piece) flatbuffers.UOffsetT {
	if piece == nil {
		return 0
	}

	cells := make([]byte, 0, piece.Shape.Width()*piece.Shape.Height())
	for _, row := range piece.Shape {
		cells = append(cells, row...)
	}
	cellsOffset := builder.CreateByteVector(cells)

	snapshotfb.PieceStart(builder)
	snapshotfb.PieceAddKind(builder, byte(piece.Kind))
	snapshotfb.PieceAddX(builder, int32(piece.X))
	snapshotfb.PieceAddY(builder, int32(piece.Y))
	snapshotfb.PieceAddWidth(builder, byte(piece.Shape.Width()))
	snapshotfb.PieceAddHeight(builder, byte(piece.Shape.Height()))
	snapshotfb.PieceAddCells(builder, cellsOffset)
	return snapshotfb.PieceEnd(builder)
}

func DeserializeSnapshotFlatbuffer(b []byte) (snapshot *gametypes.Snapshot, err error) {
	// the generated accessors panic on truncated buffers
	defer func() {
		if r := recover(); r != nil {
			snapshot = nil
			err = fmt.Errorf("invalid snapshot buffer: %v", r)
		}
	}()

	snapshotFlatbuffer := snapshotfb.GetRootAsSnapshot(b, 0)

	rows := int(snapshotFlatbuffer.Rows())
	cols := int(snapshotFlatbuffer.Cols())
	cells := snapshotFlatbuffer.CellsBytes()
	if len(cells) != rows*cols {
		return nil, fmt.Errorf("expected %d cells, got %d", rows*cols, len(cells))
	}

	snapshot = &gametypes.Snapshot{
		Board:     make([][]gametypes.Tag, rows),
		Score:     int(snapshotFlatbuffer.Score()),
		HighScore: int(snapshotFlatbuffer.HighScore()),
		Level:     int(snapshotFlatbuffer.Level()),
		Combo:     int(snapshotFlatbuffer.Combo()),
		Lines:     int(snapshotFlatbuffer.Lines()),
		State:     string(snapshotFlatbuffer.State()),
		Mode:      string(snapshotFlatbuffer.Mode()),
	}
	for y := 0; y < rows; y++ {
		snapshot.Board[y] = append([]gametypes.Tag(nil), cells[y*cols:(y+1)*cols]...)
	}

	if snapshot.Active, err = deserializePieceFlatbuffer(snapshotFlatbuffer.Active(nil)); err != nil {
		return nil, fmt.Errorf("failed to deserialize active piece: %v", err)
	}
	if snapshot.Next, err = deserializePieceFlatbuffer(snapshotFlatbuffer.Next(nil)); err != nil {
		return nil, fmt.Errorf("failed to deserialize next piece: %v", err)
	}
	if snapshot.Hold, err = deserializePieceFlatbuffer(snapshotFlatbuffer.Hold(nil)); err != nil {
		return nil, fmt.Errorf("failed to deserialize hold piece: %v", err)
	}

	return snapshot, nil
}

func deserializePieceFlatbuffer(pieceFlatbuffer *snapshotfb.Piece) (*gametypes.Piece, error) {
	if pieceFlatbuffer == nil {
		return nil, nil
	}

	width := int(pieceFlatbuffer.Width())
	height := int(pieceFlatbuffer.Height())
	cells := pieceFlatbuffer.CellsBytes()
	if len(cells) != width*height {
		return nil, fmt.Errorf("expected %d cells, got %d", width*height, len(cells))
	}

	shape := make(gametypes.Shape, height)
	for y := 0; y < height; y++ {
		shape[y] = append([]gametypes.Tag(nil), cells[y*width:(y+1)*width]...)
	}

	return &gametypes.Piece{
		Kind:  gametypes.Kind(pieceFlatbuffer.Kind()),
		Shape: shape,
		X:     int(pieceFlatbuffer.X()),
		Y:     int(pieceFlatbuffer.Y()),
	}, nil
}
