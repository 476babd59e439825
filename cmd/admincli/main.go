// admincli 是admin-service的命令行管理端：登录后把会话持久化到
// 文件键值存储，后续命令自动携带令牌访问API并以表格输出。
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/AutoHubWeb/AdminPanel/internal/domain/entities"
	"github.com/AutoHubWeb/AdminPanel/pkg/client"
	"github.com/AutoHubWeb/AdminPanel/pkg/client/session"
	"github.com/AutoHubWeb/AdminPanel/pkg/table"
)

const usage = `用法: admincli <命令> [参数]

命令:
  login -email <email> -password <password>  登录并保存会话
  logout                                     退出登录
  me                                         显示当前登录用户
  users [-keyword k] [-page n] [-limit n]    用户列表
  tools [-keyword k] [-page n] [-limit n]    工具列表
  vps [-keyword k] [-page n] [-limit n]      VPS列表
  proxy [-keyword k] [-page n] [-limit n]    代理列表
  orders [-keyword k] [-page n] [-limit n]   订单列表
  transactions [-keyword k] [-page n] [-limit n]  交易列表
  dashboard [-year n]                        总览统计
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	baseURL := os.Getenv("ADMIN_API_URL")

	sessionPath := os.Getenv("ADMIN_SESSION_FILE")
	if sessionPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			home = "."
		}
		sessionPath = filepath.Join(home, ".admin-service", "session.json")
	}

	sess := session.New(session.NewFileStore(sessionPath))
	api := client.New(baseURL, client.WithToken(sess.Token()))

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "login":
		err = runLogin(ctx, api, sess, args)
	case "logout":
		err = sess.Logout()
	case "me":
		err = runMe(sess)
	case "users":
		err = runUsers(ctx, api, args)
	case "tools":
		err = runTools(ctx, api, args)
	case "vps":
		err = runVps(ctx, api, args)
	case "proxy":
		err = runProxy(ctx, api, args)
	case "orders":
		err = runOrders(ctx, api, args)
	case "transactions":
		err = runTransactions(ctx, api, args)
	case "dashboard":
		err = runDashboard(ctx, api, args)
	default:
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func paginationFlags(name string, args []string) (entities.PaginationParams, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	keyword := fs.String("keyword", "", "搜索关键词")
	page := fs.Int("page", 1, "页码")
	limit := fs.Int("limit", 10, "每页条数")
	if err := fs.Parse(args); err != nil {
		return entities.PaginationParams{}, err
	}

	params := entities.PaginationParams{Keyword: *keyword, Page: *page, Limit: *limit}
	params.Normalize()
	return params, nil
}

func printFooter(meta entities.PaginationMeta) {
	pager := table.Pager{Page: meta.Page, Limit: meta.Limit, Total: meta.Total, TotalPages: meta.TotalPages}
	fmt.Println(pager.RangeText())
}

func runLogin(ctx context.Context, api *client.Client, sess *session.Session, args []string) error {
	fs := flag.NewFlagSet("login", flag.ContinueOnError)
	email := fs.String("email", "", "邮箱")
	password := fs.String("password", "", "密码")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *email == "" || *password == "" {
		return fmt.Errorf("login需要-email和-password")
	}

	result, err := api.Auth().Login(ctx, *email, *password)
	if err != nil {
		return err
	}

	if err := sess.Login(result.User, result.Tokens.AccessToken, result.Tokens.RefreshToken); err != nil {
		return err
	}

	fmt.Printf("已登录: %s <%s>\n", result.User.Fullname, result.User.Email)
	return nil
}

func runMe(sess *session.Session) error {
	user, err := sess.Current()
	if err != nil {
		return fmt.Errorf("未登录，请先执行 admincli login")
	}

	fmt.Printf("%s <%s> role=%d balance=%.2f\n", user.Fullname, user.Email, user.Role, user.AccountBalance)
	return nil
}

func runUsers(ctx context.Context, api *client.Client, args []string) error {
	params, err := paginationFlags("users", args)
	if err != nil {
		return err
	}

	result := api.Users().List(ctx, params)

	t := table.Table[entities.User]{
		Title: "Users",
		Columns: []table.Column[entities.User]{
			{Title: "Code", Field: "code"},
			{Title: "Fullname", Field: "fullname"},
			{Title: "Email", Field: "email"},
			{Title: "Role", Field: "role"},
			{Title: "Locked", Field: "isLocked"},
			{Title: "Balance", Render: func(u entities.User) string {
				return strconv.FormatFloat(u.AccountBalance, 'f', 2, 64)
			}},
		},
	}
	if err := t.Render(os.Stdout, result.Items); err != nil {
		return err
	}
	printFooter(result.Meta)
	return nil
}

func runTools(ctx context.Context, api *client.Client, args []string) error {
	params, err := paginationFlags("tools", args)
	if err != nil {
		return err
	}

	result := api.Tools().List(ctx, params)

	t := table.Table[entities.Tool]{
		Title: "Tools",
		Columns: []table.Column[entities.Tool]{
			{Title: "Code", Field: "code"},
			{Title: "Name", Field: "name"},
			{Title: "Status", Field: "status"},
			{Title: "Sold", Field: "soldQuantity"},
			{Title: "Plans", Render: func(tool entities.Tool) string {
				return strconv.Itoa(len(tool.Plans))
			}},
		},
	}
	if err := t.Render(os.Stdout, result.Items); err != nil {
		return err
	}
	printFooter(result.Meta)
	return nil
}

func runVps(ctx context.Context, api *client.Client, args []string) error {
	params, err := paginationFlags("vps", args)
	if err != nil {
		return err
	}

	result := api.Vps().List(ctx, params)

	t := table.Table[entities.Vps]{
		Title: "VPS",
		Columns: []table.Column[entities.Vps]{
			{Title: "Name", Field: "name"},
			{Title: "CPU", Field: "cpu"},
			{Title: "RAM", Field: "ram"},
			{Title: "Disk", Field: "disk"},
			{Title: "Price", Field: "price"},
			{Title: "Status", Field: "status"},
		},
	}
	if err := t.Render(os.Stdout, result.Items); err != nil {
		return err
	}
	printFooter(result.Meta)
	return nil
}

func runProxy(ctx context.Context, api *client.Client, args []string) error {
	params, err := paginationFlags("proxy", args)
	if err != nil {
		return err
	}

	result := api.Proxies().List(ctx, params)

	t := table.Table[entities.Proxy]{
		Title: "Proxies",
		Columns: []table.Column[entities.Proxy]{
			{Title: "Name", Field: "name"},
			{Title: "Price", Field: "price"},
			{Title: "Inventory", Field: "inventory"},
			{Title: "Sold", Field: "soldQuantity"},
			{Title: "Status", Field: "status"},
		},
	}
	if err := t.Render(os.Stdout, result.Items); err != nil {
		return err
	}
	printFooter(result.Meta)
	return nil
}

func runOrders(ctx context.Context, api *client.Client, args []string) error {
	params, err := paginationFlags("orders", args)
	if err != nil {
		return err
	}

	result := api.Orders().List(ctx, params)

	t := table.Table[entities.Order]{
		Title: "Orders",
		Columns: []table.Column[entities.Order]{
			{Title: "Code", Field: "code"},
			{Title: "User", Field: "user.email"},
			{Title: "Type", Field: "type"},
			{Title: "Total", Field: "totalPrice"},
			{Title: "Status", Field: "status"},
		},
	}
	if err := t.Render(os.Stdout, result.Items); err != nil {
		return err
	}
	printFooter(result.Meta)
	return nil
}

func runTransactions(ctx context.Context, api *client.Client, args []string) error {
	params, err := paginationFlags("transactions", args)
	if err != nil {
		return err
	}

	result := api.Transactions().List(ctx, params)

	t := table.Table[entities.Transaction]{
		Title: "Transactions",
		Columns: []table.Column[entities.Transaction]{
			{Title: "Code", Field: "code"},
			{Title: "User", Field: "user.email"},
			{Title: "Action", Field: "action"},
			{Title: "Amount", Field: "amount"},
			{Title: "Before", Field: "balanceBefore"},
			{Title: "After", Field: "balanceAfter"},
		},
	}
	if err := t.Render(os.Stdout, result.Items); err != nil {
		return err
	}
	printFooter(result.Meta)
	return nil
}

func runDashboard(ctx context.Context, api *client.Client, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ContinueOnError)
	year := fs.Int("year", time.Now().Year(), "统计年份")
	if err := fs.Parse(args); err != nil {
		return err
	}

	summary, err := api.Dashboards().Summary(ctx)
	if err != nil {
		return err
	}
	fmt.Printf("Users: %d  Tools: %d  VPS: %d  Proxies: %d\n",
		summary.TotalUser, summary.TotalTool, summary.TotalVps, summary.TotalProxy)

	revenue, err := api.Dashboards().SummaryRevenue(ctx, *year)
	if err != nil {
		return err
	}
	fmt.Printf("Revenue %d:", revenue.Year)
	for _, point := range revenue.Timelines {
		fmt.Printf(" %d月=%.2f", point.Month, point.Total)
	}
	fmt.Println()
	return nil
}
