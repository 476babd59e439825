// Package registry 封装向Nacos注册服务实例，部署在服务网格外时可以关闭。
package registry

import (
	"fmt"
	"net"
	"strconv"
	"strings"

	"github.com/nacos-group/nacos-sdk-go/v2/clients"
	"github.com/nacos-group/nacos-sdk-go/v2/clients/naming_client"
	"github.com/nacos-group/nacos-sdk-go/v2/common/constant"
	"github.com/nacos-group/nacos-sdk-go/v2/vo"

	"github.com/AutoHubWeb/AdminPanel/internal/config"
)

// Registry Nacos服务注册器
type Registry struct {
	cfg          config.NacosConfig
	namingClient naming_client.INamingClient
	ip           string
	port         int
}

// New 创建Nacos注册器
func New(cfg config.NacosConfig) (*Registry, error) {
	if cfg.NamespaceID == "" {
		cfg.NamespaceID = "public"
	}
	if cfg.Group == "" {
		cfg.Group = "DEFAULT_GROUP"
	}
	if cfg.LogDir == "" {
		cfg.LogDir = "/tmp/nacos/log"
	}
	if cfg.CacheDir == "" {
		cfg.CacheDir = "/tmp/nacos/cache"
	}

	serverAddrs := strings.Split(cfg.ServerAddr, ",")
	serverConfigs := make([]constant.ServerConfig, 0, len(serverAddrs))
	for _, addr := range serverAddrs {
		parts := strings.Split(addr, ":")
		if len(parts) != 2 {
			return nil, fmt.Errorf("无效的服务器地址格式: %s", addr)
		}

		port, err := strconv.Atoi(parts[1])
		if err != nil {
			return nil, fmt.Errorf("无效的端口号: %s", parts[1])
		}

		serverConfigs = append(serverConfigs, constant.ServerConfig{
			IpAddr: parts[0],
			Port:   uint64(port),
		})
	}

	clientConfig := constant.ClientConfig{
		NamespaceId:         cfg.NamespaceID,
		TimeoutMs:           5000,
		NotLoadCacheAtStart: true,
		LogDir:              cfg.LogDir,
		CacheDir:            cfg.CacheDir,
		LogLevel:            "info",
	}

	namingClient, err := clients.NewNamingClient(
		vo.NacosClientParam{
			ClientConfig:  &clientConfig,
			ServerConfigs: serverConfigs,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("创建Nacos命名服务客户端失败: %w", err)
	}

	return &Registry{cfg: cfg, namingClient: namingClient}, nil
}

// Register 注册本服务实例
func (r *Registry) Register(port int) error {
	ip, err := localIP()
	if err != nil {
		return fmt.Errorf("无法获取本机IP: %w", err)
	}
	r.ip = ip
	r.port = port

	success, err := r.namingClient.RegisterInstance(vo.RegisterInstanceParam{
		Ip:          ip,
		Port:        uint64(port),
		ServiceName: r.cfg.ServiceName,
		Weight:      10,
		Enable:      true,
		Healthy:     true,
		Ephemeral:   true,
		Metadata:    r.cfg.Metadata,
		GroupName:   r.cfg.Group,
	})
	if err != nil {
		return fmt.Errorf("注册服务实例失败: %w", err)
	}
	if !success {
		return fmt.Errorf("注册服务实例被拒绝: %s", r.cfg.ServiceName)
	}

	return nil
}

// Deregister 注销本服务实例
func (r *Registry) Deregister() error {
	_, err := r.namingClient.DeregisterInstance(vo.DeregisterInstanceParam{
		Ip:          r.ip,
		Port:        uint64(r.port),
		ServiceName: r.cfg.ServiceName,
		Ephemeral:   true,
		GroupName:   r.cfg.Group,
	})
	if err != nil {
		return fmt.Errorf("注销服务实例失败: %w", err)
	}

	return nil
}

// 取第一个非回环的IPv4地址
func localIP() (string, error) {
	addrs, err := net.InterfaceAddrs()
	if err != nil {
		return "", err
	}

	for _, addr := range addrs {
		if ipNet, ok := addr.(*net.IPNet); ok && !ipNet.IP.IsLoopback() && ipNet.IP.To4() != nil {
			return ipNet.IP.String(), nil
		}
	}

	return "", fmt.Errorf("未找到可用的本机IP")
}
