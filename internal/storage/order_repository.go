package storage

import (
	"database/sql"
	"errors"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/internal/domain/repositories"
)

// PostgresOrderRepository PostgreSQL订单仓库实现
type PostgresOrderRepository struct {
	DB *sqlx.DB
}

var _ repositories.OrderRepository = (*PostgresOrderRepository)(nil)

// NewPostgresOrderRepository 创建PostgreSQL订单仓库
func NewPostgresOrderRepository(db *sqlx.DB) *PostgresOrderRepository {
	return &PostgresOrderRepository{DB: db}
}

// 订单连同用户摘要的查询行
type orderRow struct {
	ID           string     `db:"id"`
	Code         string     `db:"code"`
	UserID       string     `db:"user_id"`
	Type         string     `db:"type"`
	TotalPrice   float64    `db:"total_price"`
	Status       string     `db:"status"`
	Note         *string    `db:"note"`
	CompletedAt  *time.Time `db:"completed_at"`
	ExpiredAt    *time.Time `db:"expired_at"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
	UserCode     string     `db:"user_code"`
	UserFullname string     `db:"user_fullname"`
	UserEmail    string     `db:"user_email"`
}

func (row orderRow) toEntity() entities.Order {
	return entities.Order{
		ID:          row.ID,
		Code:        row.Code,
		UserID:      row.UserID,
		Type:        row.Type,
		TotalPrice:  row.TotalPrice,
		Status:      row.Status,
		Note:        row.Note,
		CompletedAt: row.CompletedAt,
		ExpiredAt:   row.ExpiredAt,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
		User: entities.UserSummary{
			ID:       row.UserID,
			Code:     row.UserCode,
			Fullname: row.UserFullname,
			Email:    row.UserEmail,
		},
	}
}

const orderSelect = `
	SELECT o.*, u.code AS user_code, u.fullname AS user_fullname, u.email AS user_email
	FROM orders o
	JOIN users u ON u.id = o.user_id
`

// FindByID 通过ID查找订单
func (r *PostgresOrderRepository) FindByID(id string) (entities.Order, error) {
	var row orderRow

	if err := r.DB.Get(&row, orderSelect+" WHERE o.id = $1", id); err != nil {
		if err == sql.ErrNoRows {
			return entities.Order{}, errors.New("订单不存在")
		}
		return entities.Order{}, err
	}

	order := row.toEntity()
	if err := r.loadDetails(&order); err != nil {
		return entities.Order{}, err
	}

	return order, nil
}

// FindAll 查找所有订单（分页，keyword匹配订单编号或用户邮箱）
func (r *PostgresOrderRepository) FindAll(params entities.PaginationParams) ([]entities.Order, int, error) {
	rows := []orderRow{}
	var totalItems int

	pattern := "%" + params.Keyword + "%"

	countQuery := `
		SELECT COUNT(*)
		FROM orders o
		JOIN users u ON u.id = o.user_id
		WHERE o.code ILIKE $1 OR u.email ILIKE $1
	`
	if err := r.DB.Get(&totalItems, countQuery, pattern); err != nil {
		return nil, 0, err
	}

	query := orderSelect + `
		WHERE o.code ILIKE $1 OR u.email ILIKE $1
		ORDER BY o.created_at DESC
		LIMIT $2 OFFSET $3
	`
	if err := r.DB.Select(&rows, query, pattern, params.Limit, params.Offset()); err != nil {
		return nil, 0, err
	}

	orders := make([]entities.Order, 0, len(rows))
	for _, row := range rows {
		order := row.toEntity()
		if err := r.loadDetails(&order); err != nil {
			return nil, 0, err
		}
		orders = append(orders, order)
	}

	return orders, totalItems, nil
}

// Update 更新订单及其类型子对象
func (r *PostgresOrderRepository) Update(order entities.Order) (entities.Order, error) {
	tx, err := r.DB.Beginx()
	if err != nil {
		return entities.Order{}, err
	}
	defer tx.Rollback()

	query := `
		UPDATE orders SET
			status = :status,
			note = :note,
			completed_at = :completed_at,
			expired_at = :expired_at,
			updated_at = :updated_at
		WHERE id = :id
	`
	result, err := tx.NamedExec(query, order)
	if err != nil {
		return entities.Order{}, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return entities.Order{}, err
	}
	if affected == 0 {
		return entities.Order{}, errors.New("订单不存在")
	}

	if order.VpsOrder != nil {
		query := `
			INSERT INTO vps_orders (order_id, ip, username, password, expired_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (order_id) DO UPDATE SET
				ip = EXCLUDED.ip,
				username = EXCLUDED.username,
				password = EXCLUDED.password,
				expired_at = EXCLUDED.expired_at
		`
		d := order.VpsOrder
		if _, err := tx.Exec(query, order.ID, d.IP, d.Username, d.Password, d.ExpiredAt); err != nil {
			return entities.Order{}, err
		}
	}

	if order.ProxyOrder != nil {
		query := `
			INSERT INTO proxy_orders (order_id, proxies, expired_at)
			VALUES ($1, $2, $3)
			ON CONFLICT (order_id) DO UPDATE SET
				proxies = EXCLUDED.proxies,
				expired_at = EXCLUDED.expired_at
		`
		d := order.ProxyOrder
		if _, err := tx.Exec(query, order.ID, d.Proxies, d.ExpiredAt); err != nil {
			return entities.Order{}, err
		}
	}

	if order.ToolOrder != nil {
		query := `
			INSERT INTO tool_orders (order_id, name, price, duration, api_key, expired_at, change_api_key_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			ON CONFLICT (order_id) DO UPDATE SET
				name = EXCLUDED.name,
				price = EXCLUDED.price,
				duration = EXCLUDED.duration,
				api_key = EXCLUDED.api_key,
				expired_at = EXCLUDED.expired_at,
				change_api_key_at = EXCLUDED.change_api_key_at
		`
		d := order.ToolOrder
		if _, err := tx.Exec(query, order.ID, d.Name, d.Price, d.Duration, d.ApiKey, d.ExpiredAt, d.ChangeApiKeyAt); err != nil {
			return entities.Order{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return entities.Order{}, err
	}

	return r.FindByID(order.ID)
}

// SumRevenueByMonth 按月统计某一年已完成订单的营收
func (r *PostgresOrderRepository) SumRevenueByMonth(year int) ([]entities.MonthlyTotal, error) {
	totals := []entities.MonthlyTotal{}

	query := `
		SELECT EXTRACT(MONTH FROM completed_at)::int AS month, SUM(total_price)::float8 AS total
		FROM orders
		WHERE completed_at IS NOT NULL AND EXTRACT(YEAR FROM completed_at) = $1
		GROUP BY month
		ORDER BY month
	`
	if err := r.DB.Select(&totals, query, year); err != nil {
		return nil, err
	}

	return totals, nil
}

// 加载订单的类型子对象
func (r *PostgresOrderRepository) loadDetails(order *entities.Order) error {
	switch order.Type {
	case entities.OrderTypeVps:
		var detail entities.VpsOrder
		err := r.DB.Get(&detail, "SELECT ip, username, password, expired_at FROM vps_orders WHERE order_id = $1", order.ID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil
			}
			return err
		}
		order.VpsOrder = &detail
	case entities.OrderTypeProxy:
		var detail entities.ProxyOrder
		err := r.DB.Get(&detail, "SELECT proxies, expired_at FROM proxy_orders WHERE order_id = $1", order.ID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil
			}
			return err
		}
		order.ProxyOrder = &detail
	case entities.OrderTypeTool:
		var detail entities.ToolOrder
		err := r.DB.Get(&detail, "SELECT name, price, duration, api_key, expired_at, change_api_key_at FROM tool_orders WHERE order_id = $1", order.ID)
		if err != nil {
			if err == sql.ErrNoRows {
				return nil
			}
			return err
		}
		order.ToolOrder = &detail
	}

	return nil
}
