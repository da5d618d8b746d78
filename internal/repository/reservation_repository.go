package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/hotelero/reservas/internal/model"
)

// ReservationRepo provides CRUD, overlap and aggregate queries for the
// reservas table.  Dates are stored in DATE columns and compared as whole
// calendar days; timestamps are assigned by the database.
type ReservationRepo struct {
	db *sql.DB
}

// NewReservationRepo returns a new ReservationRepo bound to the given database.
func NewReservationRepo(db *sql.DB) *ReservationRepo { return &ReservationRepo{db: db} }

// selectCols is the column list every reservation scan uses.
const selectCols = `id, cliente, habitacion, fecha_entrada, fecha_salida, total, creado_en, actualizado_en`

// ListFilter narrows the result of List.  Zero values mean "no filter".
type ListFilter struct {
	Habitacion   uint       // exact room match when > 0
	FechaEntrada *time.Time // exact check-in day match when non-nil
}

// List returns reservations matching the filter, ordered by check-in date
// ascending.  An empty table yields an empty slice, not nil.
func (r *ReservationRepo) List(ctx context.Context, f ListFilter) ([]model.Reservation, error) {
	q := `SELECT ` + selectCols + ` FROM reservas WHERE 1=1`
	args := make([]any, 0, 2)
	if f.Habitacion > 0 {
		q += ` AND habitacion = ?`
		args = append(args, f.Habitacion)
	}
	if f.FechaEntrada != nil {
		q += ` AND fecha_entrada = ?`
		args = append(args, f.FechaEntrada.Format(model.DateLayout))
	}
	q += ` ORDER BY fecha_entrada ASC, id ASC`

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.Reservation, 0)
	for rows.Next() {
		var res model.Reservation
		if err := scanReservation(rows, &res); err != nil {
			return nil, err
		}
		out = append(out, res)
	}
	return out, rows.Err()
}

// GetByID returns a single reservation or ErrReservationNotFound.
func (r *ReservationRepo) GetByID(ctx context.Context, id uint64) (*model.Reservation, error) {
	const q = `SELECT ` + selectCols + ` FROM reservas WHERE id = ?`
	var res model.Reservation
	err := scanReservation(r.db.QueryRowContext(ctx, q, id), &res)
	if err == sql.ErrNoRows {
		return nil, ErrReservationNotFound
	}
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// Create inserts a new reservation after checking for overlapping stays in
// the same room.  The overlap check and the insert run in one transaction;
// on success the generated id and database timestamps are populated on res.
// Returns ErrOverlap when the room is already booked for an intersecting
// date range.
func (r *ReservationRepo) Create(ctx context.Context, res *model.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	conflict, err := overlapExists(ctx, tx, res.Habitacion, res.FechaEntrada, res.FechaSalida, 0)
	if err != nil {
		return err
	}
	if conflict {
		return ErrOverlap
	}

	const ins = `INSERT INTO reservas (cliente, habitacion, fecha_entrada, fecha_salida, total) VALUES (?, ?, ?, ?, ?)`
	result, err := tx.ExecContext(ctx, ins,
		res.Cliente, res.Habitacion,
		res.FechaEntrada.Format(model.DateLayout), res.FechaSalida.Format(model.DateLayout),
		res.Total,
	)
	if err != nil {
		return err
	}
	id, err := result.LastInsertId()
	if err != nil {
		return err
	}
	res.ID = uint64(id)

	// Query back the full row to populate timestamps and defaults.
	const sel = `SELECT ` + selectCols + ` FROM reservas WHERE id = ?`
	if err := scanReservation(tx.QueryRowContext(ctx, sel, res.ID), res); err != nil {
		return err
	}
	return tx.Commit()
}

// Update replaces the mutable fields of an existing reservation.  The
// record being updated is excluded from the overlap check so a reservation
// never conflicts with itself.  Returns ErrReservationNotFound when the id
// does not exist and ErrOverlap on a date conflict.
func (r *ReservationRepo) Update(ctx context.Context, res *model.Reservation) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	var exists bool
	if err := tx.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM reservas WHERE id = ?)`, res.ID).Scan(&exists); err != nil {
		return err
	}
	if !exists {
		return ErrReservationNotFound
	}

	conflict, err := overlapExists(ctx, tx, res.Habitacion, res.FechaEntrada, res.FechaSalida, res.ID)
	if err != nil {
		return err
	}
	if conflict {
		return ErrOverlap
	}

	const upd = `UPDATE reservas
                 SET cliente = ?, habitacion = ?, fecha_entrada = ?, fecha_salida = ?, total = ?, actualizado_en = CURRENT_TIMESTAMP
                 WHERE id = ?`
	if _, err := tx.ExecContext(ctx, upd,
		res.Cliente, res.Habitacion,
		res.FechaEntrada.Format(model.DateLayout), res.FechaSalida.Format(model.DateLayout),
		res.Total, res.ID,
	); err != nil {
		return err
	}

	const sel = `SELECT ` + selectCols + ` FROM reservas WHERE id = ?`
	if err := scanReservation(tx.QueryRowContext(ctx, sel, res.ID), res); err != nil {
		return err
	}
	return tx.Commit()
}

// Delete removes a reservation permanently.  Returns ErrReservationNotFound
// when no row was deleted.
func (r *ReservationRepo) Delete(ctx context.Context, id uint64) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM reservas WHERE id = ?`, id)
	if err != nil {
		return err
	}
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrReservationNotFound
	}
	return nil
}

// HasOverlap reports whether any reservation for the room intersects the
// inclusive range [entrada, salida].  A non-zero excludeID leaves that
// record out of the check, which is how updates avoid conflicting with
// themselves.
func (r *ReservationRepo) HasOverlap(ctx context.Context, habitacion uint, entrada, salida time.Time, excludeID uint64) (bool, error) {
	return overlapExists(ctx, r.db, habitacion, entrada, salida, excludeID)
}

// AverageTotal returns the arithmetic mean of total over all reservations,
// or 0 when the table is empty.
func (r *ReservationRepo) AverageTotal(ctx context.Context) (float64, error) {
	const q = `SELECT COALESCE(AVG(total), 0) FROM reservas`
	var avg float64
	if err := r.db.QueryRowContext(ctx, q).Scan(&avg); err != nil {
		return 0, err
	}
	return avg, nil
}

// SummaryByRoom returns one aggregate row per distinct room, ordered by
// room number ascending.
func (r *ReservationRepo) SummaryByRoom(ctx context.Context) ([]model.RoomSummary, error) {
	const q = `SELECT habitacion, COUNT(*), SUM(total), AVG(total)
               FROM reservas
               GROUP BY habitacion
               ORDER BY habitacion ASC`
	rows, err := r.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]model.RoomSummary, 0)
	for rows.Next() {
		var s model.RoomSummary
		if err := rows.Scan(&s.Habitacion, &s.Reservas, &s.TotalFacturado, &s.PromedioPorReserva); err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

// rowQuerier is satisfied by both *sql.DB and *sql.Tx so the overlap
// predicate can run standalone or inside the create/update transaction.
type rowQuerier interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// overlapExists implements the booking invariant: two stays for the same
// room conflict when existing.fecha_entrada <= salida AND
// existing.fecha_salida >= entrada, boundaries inclusive.
func overlapExists(ctx context.Context, q rowQuerier, habitacion uint, entrada, salida time.Time, excludeID uint64) (bool, error) {
	query := `SELECT EXISTS(
                SELECT 1 FROM reservas
                WHERE habitacion = ? AND fecha_entrada <= ? AND fecha_salida >= ?`
	args := []any{habitacion, salida.Format(model.DateLayout), entrada.Format(model.DateLayout)}
	if excludeID != 0 {
		query += ` AND id <> ?`
		args = append(args, excludeID)
	}
	query += `)`

	var exists bool
	if err := q.QueryRowContext(ctx, query, args...).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanReservation(row rowScanner, res *model.Reservation) error {
	return row.Scan(
		&res.ID, &res.Cliente, &res.Habitacion,
		&res.FechaEntrada, &res.FechaSalida,
		&res.Total, &res.CreadoEn, &res.ActualizadoEn,
	)
}
